// Code generated by ent, DO NOT EDIT.

package ent

import (
	"dashgate/internal/db/ent/accessgrant"
	"dashgate/internal/db/ent/clickevent"
	"dashgate/internal/db/ent/dashboard"
	"dashgate/internal/db/ent/schema"
	"dashgate/internal/db/ent/session"
	"dashgate/internal/db/ent/team"
	"dashgate/internal/db/ent/user"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accessgrantMixin := schema.AccessGrant{}.Mixin()
	accessgrantMixinFields0 := accessgrantMixin[0].Fields()
	_ = accessgrantMixinFields0
	accessgrantFields := schema.AccessGrant{}.Fields()
	_ = accessgrantFields
	// accessgrantDescCreatedAt is the schema descriptor for created_at field.
	accessgrantDescCreatedAt := accessgrantMixinFields0[0].Descriptor()
	// accessgrant.DefaultCreatedAt holds the default value on creation for the created_at field.
	accessgrant.DefaultCreatedAt = accessgrantDescCreatedAt.Default.(func() time.Time)
	// accessgrantDescUpdatedAt is the schema descriptor for updated_at field.
	accessgrantDescUpdatedAt := accessgrantMixinFields0[1].Descriptor()
	// accessgrant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	accessgrant.DefaultUpdatedAt = accessgrantDescUpdatedAt.Default.(func() time.Time)
	// accessgrant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	accessgrant.UpdateDefaultUpdatedAt = accessgrantDescUpdatedAt.UpdateDefault.(func() time.Time)
	clickeventMixin := schema.ClickEvent{}.Mixin()
	clickeventMixinFields0 := clickeventMixin[0].Fields()
	_ = clickeventMixinFields0
	clickeventFields := schema.ClickEvent{}.Fields()
	_ = clickeventFields
	// clickeventDescCreatedAt is the schema descriptor for created_at field.
	clickeventDescCreatedAt := clickeventMixinFields0[0].Descriptor()
	// clickevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	clickevent.DefaultCreatedAt = clickeventDescCreatedAt.Default.(func() time.Time)
	// clickeventDescUpdatedAt is the schema descriptor for updated_at field.
	clickeventDescUpdatedAt := clickeventMixinFields0[1].Descriptor()
	// clickevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clickevent.DefaultUpdatedAt = clickeventDescUpdatedAt.Default.(func() time.Time)
	// clickevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clickevent.UpdateDefaultUpdatedAt = clickeventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clickeventDescDashboardTitle is the schema descriptor for dashboard_title field.
	clickeventDescDashboardTitle := clickeventFields[2].Descriptor()
	// clickevent.DefaultDashboardTitle holds the default value on creation for the dashboard_title field.
	clickevent.DefaultDashboardTitle = clickeventDescDashboardTitle.Default.(string)
	dashboardMixin := schema.Dashboard{}.Mixin()
	dashboardMixinFields0 := dashboardMixin[0].Fields()
	_ = dashboardMixinFields0
	dashboardFields := schema.Dashboard{}.Fields()
	_ = dashboardFields
	// dashboardDescCreatedAt is the schema descriptor for created_at field.
	dashboardDescCreatedAt := dashboardMixinFields0[0].Descriptor()
	// dashboard.DefaultCreatedAt holds the default value on creation for the created_at field.
	dashboard.DefaultCreatedAt = dashboardDescCreatedAt.Default.(func() time.Time)
	// dashboardDescUpdatedAt is the schema descriptor for updated_at field.
	dashboardDescUpdatedAt := dashboardMixinFields0[1].Descriptor()
	// dashboard.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dashboard.DefaultUpdatedAt = dashboardDescUpdatedAt.Default.(func() time.Time)
	// dashboard.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dashboard.UpdateDefaultUpdatedAt = dashboardDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dashboardDescDescription is the schema descriptor for description field.
	dashboardDescDescription := dashboardFields[2].Descriptor()
	// dashboard.DefaultDescription holds the default value on creation for the description field.
	dashboard.DefaultDescription = dashboardDescDescription.Default.(string)
	// dashboardDescThumbnail is the schema descriptor for thumbnail field.
	dashboardDescThumbnail := dashboardFields[4].Descriptor()
	// dashboard.DefaultThumbnail holds the default value on creation for the thumbnail field.
	dashboard.DefaultThumbnail = dashboardDescThumbnail.Default.(string)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields0[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields0[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescIsActive is the schema descriptor for is_active field.
	sessionDescIsActive := sessionFields[4].Descriptor()
	// session.DefaultIsActive holds the default value on creation for the is_active field.
	session.DefaultIsActive = sessionDescIsActive.Default.(bool)
	teamMixin := schema.Team{}.Mixin()
	teamMixinFields0 := teamMixin[0].Fields()
	_ = teamMixinFields0
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamMixinFields0[0].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamMixinFields0[1].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	// teamDescDescription is the schema descriptor for description field.
	teamDescDescription := teamFields[2].Descriptor()
	// team.DefaultDescription holds the default value on creation for the description field.
	team.DefaultDescription = teamDescDescription.Default.(string)
	// teamDescIsActive is the schema descriptor for is_active field.
	teamDescIsActive := teamFields[3].Descriptor()
	// team.DefaultIsActive holds the default value on creation for the is_active field.
	team.DefaultIsActive = teamDescIsActive.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescPhotoURL is the schema descriptor for photo_url field.
	userDescPhotoURL := userFields[4].Descriptor()
	// user.DefaultPhotoURL holds the default value on creation for the photo_url field.
	user.DefaultPhotoURL = userDescPhotoURL.Default.(string)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[5].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// userDescTeam is the schema descriptor for team field.
	userDescTeam := userFields[6].Descriptor()
	// user.DefaultTeam holds the default value on creation for the team field.
	user.DefaultTeam = userDescTeam.Default.(string)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
}
