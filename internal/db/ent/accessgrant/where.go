// Code generated by ent, DO NOT EDIT.

package accessgrant

import (
	"dashgate/internal/db/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldUpdatedAt, v))
}

// DashboardID applies equality check predicate on the "dashboard_id" field. It's identical to DashboardIDEQ.
func DashboardID(v uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldDashboardID, v))
}

// SubjectKind applies equality check predicate on the "subject_kind" field. It's identical to SubjectKindEQ.
func SubjectKind(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldSubjectKind, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldSubject, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLTE(FieldUpdatedAt, v))
}

// DashboardIDEQ applies the EQ predicate on the "dashboard_id" field.
func DashboardIDEQ(v uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldDashboardID, v))
}

// DashboardIDNEQ applies the NEQ predicate on the "dashboard_id" field.
func DashboardIDNEQ(v uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNEQ(FieldDashboardID, v))
}

// DashboardIDIn applies the In predicate on the "dashboard_id" field.
func DashboardIDIn(vs ...uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldIn(FieldDashboardID, vs...))
}

// DashboardIDNotIn applies the NotIn predicate on the "dashboard_id" field.
func DashboardIDNotIn(vs ...uint32) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNotIn(FieldDashboardID, vs...))
}

// SubjectKindEQ applies the EQ predicate on the "subject_kind" field.
func SubjectKindEQ(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldSubjectKind, v))
}

// SubjectKindNEQ applies the NEQ predicate on the "subject_kind" field.
func SubjectKindNEQ(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNEQ(FieldSubjectKind, v))
}

// SubjectKindIn applies the In predicate on the "subject_kind" field.
func SubjectKindIn(vs ...string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldIn(FieldSubjectKind, vs...))
}

// SubjectKindNotIn applies the NotIn predicate on the "subject_kind" field.
func SubjectKindNotIn(vs ...string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNotIn(FieldSubjectKind, vs...))
}

// SubjectKindGT applies the GT predicate on the "subject_kind" field.
func SubjectKindGT(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGT(FieldSubjectKind, v))
}

// SubjectKindGTE applies the GTE predicate on the "subject_kind" field.
func SubjectKindGTE(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGTE(FieldSubjectKind, v))
}

// SubjectKindLT applies the LT predicate on the "subject_kind" field.
func SubjectKindLT(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLT(FieldSubjectKind, v))
}

// SubjectKindLTE applies the LTE predicate on the "subject_kind" field.
func SubjectKindLTE(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLTE(FieldSubjectKind, v))
}

// SubjectKindContains applies the Contains predicate on the "subject_kind" field.
func SubjectKindContains(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldContains(FieldSubjectKind, v))
}

// SubjectKindHasPrefix applies the HasPrefix predicate on the "subject_kind" field.
func SubjectKindHasPrefix(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldHasPrefix(FieldSubjectKind, v))
}

// SubjectKindHasSuffix applies the HasSuffix predicate on the "subject_kind" field.
func SubjectKindHasSuffix(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldHasSuffix(FieldSubjectKind, v))
}

// SubjectKindEqualFold applies the EqualFold predicate on the "subject_kind" field.
func SubjectKindEqualFold(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEqualFold(FieldSubjectKind, v))
}

// SubjectKindContainsFold applies the ContainsFold predicate on the "subject_kind" field.
func SubjectKindContainsFold(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldContainsFold(FieldSubjectKind, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.AccessGrant {
	return predicate.AccessGrant(sql.FieldContainsFold(FieldSubject, v))
}

// HasDashboard applies the HasEdge predicate on the "dashboard" edge.
func HasDashboard() predicate.AccessGrant {
	return predicate.AccessGrant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DashboardTable, DashboardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDashboardWith applies the HasEdge predicate on the "dashboard" edge with a given conditions (other predicates).
func HasDashboardWith(preds ...predicate.Dashboard) predicate.AccessGrant {
	return predicate.AccessGrant(func(s *sql.Selector) {
		step := newDashboardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AccessGrant) predicate.AccessGrant {
	return predicate.AccessGrant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AccessGrant) predicate.AccessGrant {
	return predicate.AccessGrant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AccessGrant) predicate.AccessGrant {
	return predicate.AccessGrant(sql.NotPredicates(p))
}
