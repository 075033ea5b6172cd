// Code generated by ent, DO NOT EDIT.

package clickevent

import (
	"dashgate/internal/db/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// DashboardID applies equality check predicate on the "dashboard_id" field. It's identical to DashboardIDEQ.
func DashboardID(v uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldDashboardID, v))
}

// DashboardTitle applies equality check predicate on the "dashboard_title" field. It's identical to DashboardTitleEQ.
func DashboardTitle(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldDashboardTitle, v))
}

// UserEmail applies equality check predicate on the "user_email" field. It's identical to UserEmailEQ.
func UserEmail(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldUserEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLTE(FieldUpdatedAt, v))
}

// DashboardIDEQ applies the EQ predicate on the "dashboard_id" field.
func DashboardIDEQ(v uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldDashboardID, v))
}

// DashboardIDNEQ applies the NEQ predicate on the "dashboard_id" field.
func DashboardIDNEQ(v uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNEQ(FieldDashboardID, v))
}

// DashboardIDIn applies the In predicate on the "dashboard_id" field.
func DashboardIDIn(vs ...uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldIn(FieldDashboardID, vs...))
}

// DashboardIDNotIn applies the NotIn predicate on the "dashboard_id" field.
func DashboardIDNotIn(vs ...uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNotIn(FieldDashboardID, vs...))
}

// DashboardIDGT applies the GT predicate on the "dashboard_id" field.
func DashboardIDGT(v uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGT(FieldDashboardID, v))
}

// DashboardIDGTE applies the GTE predicate on the "dashboard_id" field.
func DashboardIDGTE(v uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGTE(FieldDashboardID, v))
}

// DashboardIDLT applies the LT predicate on the "dashboard_id" field.
func DashboardIDLT(v uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLT(FieldDashboardID, v))
}

// DashboardIDLTE applies the LTE predicate on the "dashboard_id" field.
func DashboardIDLTE(v uint32) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLTE(FieldDashboardID, v))
}

// DashboardTitleEQ applies the EQ predicate on the "dashboard_title" field.
func DashboardTitleEQ(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldDashboardTitle, v))
}

// DashboardTitleNEQ applies the NEQ predicate on the "dashboard_title" field.
func DashboardTitleNEQ(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNEQ(FieldDashboardTitle, v))
}

// DashboardTitleIn applies the In predicate on the "dashboard_title" field.
func DashboardTitleIn(vs ...string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldIn(FieldDashboardTitle, vs...))
}

// DashboardTitleNotIn applies the NotIn predicate on the "dashboard_title" field.
func DashboardTitleNotIn(vs ...string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNotIn(FieldDashboardTitle, vs...))
}

// DashboardTitleGT applies the GT predicate on the "dashboard_title" field.
func DashboardTitleGT(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGT(FieldDashboardTitle, v))
}

// DashboardTitleGTE applies the GTE predicate on the "dashboard_title" field.
func DashboardTitleGTE(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGTE(FieldDashboardTitle, v))
}

// DashboardTitleLT applies the LT predicate on the "dashboard_title" field.
func DashboardTitleLT(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLT(FieldDashboardTitle, v))
}

// DashboardTitleLTE applies the LTE predicate on the "dashboard_title" field.
func DashboardTitleLTE(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLTE(FieldDashboardTitle, v))
}

// DashboardTitleContains applies the Contains predicate on the "dashboard_title" field.
func DashboardTitleContains(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldContains(FieldDashboardTitle, v))
}

// DashboardTitleHasPrefix applies the HasPrefix predicate on the "dashboard_title" field.
func DashboardTitleHasPrefix(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldHasPrefix(FieldDashboardTitle, v))
}

// DashboardTitleHasSuffix applies the HasSuffix predicate on the "dashboard_title" field.
func DashboardTitleHasSuffix(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldHasSuffix(FieldDashboardTitle, v))
}

// DashboardTitleIsNil applies the IsNil predicate on the "dashboard_title" field.
func DashboardTitleIsNil() predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldIsNull(FieldDashboardTitle))
}

// DashboardTitleNotNil applies the NotNil predicate on the "dashboard_title" field.
func DashboardTitleNotNil() predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNotNull(FieldDashboardTitle))
}

// DashboardTitleEqualFold applies the EqualFold predicate on the "dashboard_title" field.
func DashboardTitleEqualFold(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEqualFold(FieldDashboardTitle, v))
}

// DashboardTitleContainsFold applies the ContainsFold predicate on the "dashboard_title" field.
func DashboardTitleContainsFold(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldContainsFold(FieldDashboardTitle, v))
}

// UserEmailEQ applies the EQ predicate on the "user_email" field.
func UserEmailEQ(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEQ(FieldUserEmail, v))
}

// UserEmailNEQ applies the NEQ predicate on the "user_email" field.
func UserEmailNEQ(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNEQ(FieldUserEmail, v))
}

// UserEmailIn applies the In predicate on the "user_email" field.
func UserEmailIn(vs ...string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldIn(FieldUserEmail, vs...))
}

// UserEmailNotIn applies the NotIn predicate on the "user_email" field.
func UserEmailNotIn(vs ...string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldNotIn(FieldUserEmail, vs...))
}

// UserEmailGT applies the GT predicate on the "user_email" field.
func UserEmailGT(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGT(FieldUserEmail, v))
}

// UserEmailGTE applies the GTE predicate on the "user_email" field.
func UserEmailGTE(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldGTE(FieldUserEmail, v))
}

// UserEmailLT applies the LT predicate on the "user_email" field.
func UserEmailLT(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLT(FieldUserEmail, v))
}

// UserEmailLTE applies the LTE predicate on the "user_email" field.
func UserEmailLTE(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldLTE(FieldUserEmail, v))
}

// UserEmailContains applies the Contains predicate on the "user_email" field.
func UserEmailContains(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldContains(FieldUserEmail, v))
}

// UserEmailHasPrefix applies the HasPrefix predicate on the "user_email" field.
func UserEmailHasPrefix(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldHasPrefix(FieldUserEmail, v))
}

// UserEmailHasSuffix applies the HasSuffix predicate on the "user_email" field.
func UserEmailHasSuffix(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldHasSuffix(FieldUserEmail, v))
}

// UserEmailEqualFold applies the EqualFold predicate on the "user_email" field.
func UserEmailEqualFold(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldEqualFold(FieldUserEmail, v))
}

// UserEmailContainsFold applies the ContainsFold predicate on the "user_email" field.
func UserEmailContainsFold(v string) predicate.ClickEvent {
	return predicate.ClickEvent(sql.FieldContainsFold(FieldUserEmail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClickEvent) predicate.ClickEvent {
	return predicate.ClickEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClickEvent) predicate.ClickEvent {
	return predicate.ClickEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClickEvent) predicate.ClickEvent {
	return predicate.ClickEvent(sql.NotPredicates(p))
}
