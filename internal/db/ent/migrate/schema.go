// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccessGrantsColumns holds the columns for the "access_grants" table.
	AccessGrantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subject_kind", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "dashboard_id", Type: field.TypeUint32},
	}
	// AccessGrantsTable holds the schema information for the "access_grants" table.
	AccessGrantsTable = &schema.Table{
		Name:       "access_grants",
		Columns:    AccessGrantsColumns,
		PrimaryKey: []*schema.Column{AccessGrantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "access_grants_dashboards_grants",
				Columns:    []*schema.Column{AccessGrantsColumns[5]},
				RefColumns: []*schema.Column{DashboardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "accessgrant_dashboard_id_subject_kind_subject",
				Unique:  true,
				Columns: []*schema.Column{AccessGrantsColumns[5], AccessGrantsColumns[3], AccessGrantsColumns[4]},
			},
		},
	}
	// ClickEventsColumns holds the columns for the "click_events" table.
	ClickEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "dashboard_id", Type: field.TypeUint32},
		{Name: "dashboard_title", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "user_email", Type: field.TypeString},
	}
	// ClickEventsTable holds the schema information for the "click_events" table.
	ClickEventsTable = &schema.Table{
		Name:       "click_events",
		Columns:    ClickEventsColumns,
		PrimaryKey: []*schema.Column{ClickEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clickevent_user_email",
				Unique:  false,
				Columns: []*schema.Column{ClickEventsColumns[5]},
			},
			{
				Name:    "clickevent_dashboard_id",
				Unique:  false,
				Columns: []*schema.Column{ClickEventsColumns[3]},
			},
		},
	}
	// DashboardsColumns holds the columns for the "dashboards" table.
	DashboardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "url", Type: field.TypeString},
		{Name: "thumbnail", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// DashboardsTable holds the schema information for the "dashboards" table.
	DashboardsTable = &schema.Table{
		Name:       "dashboards",
		Columns:    DashboardsColumns,
		PrimaryKey: []*schema.Column{DashboardsColumns[0]},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used", Type: field.TypeTime},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_sessions", Type: field.TypeUint32},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "firebase_uid", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "photo_url", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "role", Type: field.TypeString, Default: "user"},
		{Name: "team", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_ip", Type: field.TypeString, Nullable: true},
		{Name: "last_activity", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccessGrantsTable,
		ClickEventsTable,
		DashboardsTable,
		SessionsTable,
		TeamsTable,
		UsersTable,
	}
)

func init() {
	AccessGrantsTable.ForeignKeys[0].RefTable = DashboardsTable
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
}
