// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_type", Type: field.TypeEnum, Enums: []string{"order", "ticket"}},
		{Name: "thread_id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt},
		{Name: "sender", Type: field.TypeEnum, Enums: []string{"client", "manager"}},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "file_key", Type: field.TypeString, Nullable: true},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_thread_type_thread_id_seq",
				Unique:  true,
				Columns: []*schema.Column{ChatMessagesColumns[2], ChatMessagesColumns[3], ChatMessagesColumns[4]},
			},
			{
				Name:    "chatmessage_thread_type_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2], ChatMessagesColumns[3], ChatMessagesColumns[1]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "reference", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "service", Type: field.TypeString, Size: 255},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "awaiting_discussion", "in_progress", "under_review", "completed", "cancelled"}, Default: "new"},
		{Name: "client_name", Type: field.TypeString, Size: 255},
		{Name: "client_email", Type: field.TypeString, Size: 255},
		{Name: "client_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "details", Type: field.TypeString, Size: 2147483647},
		{Name: "can_discuss", Type: field.TypeBool, Default: true},
		{Name: "can_download", Type: field.TypeBool, Default: false},
		{Name: "admin_unread", Type: field.TypeBool, Default: false},
		{Name: "client_unread", Type: field.TypeBool, Default: false},
		{Name: "message_seq", Type: field.TypeInt, Default: 0},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_client_email_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[8], OrdersColumns[6]},
			},
			{
				Name:    "order_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[6]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "reference", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "subject", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "in_progress", "completed", "rejected"}, Default: "new"},
		{Name: "admin_unread", Type: field.TypeBool, Default: true},
		{Name: "client_unread", Type: field.TypeBool, Default: false},
		{Name: "message_seq", Type: field.TypeInt, Default: 0},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_email_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[6], TicketsColumns[9]},
			},
			{
				Name:    "ticket_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"client", "admin"}, Default: "client"},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		OrdersTable,
		TicketsTable,
		UsersTable,
	}
)

func init() {
}
