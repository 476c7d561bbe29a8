// ABOUTME: Schema bootstrap for the hosted store
// ABOUTME: Creates every application table idempotently on init
package remote

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		instagram TEXT,
		since TEXT,
		status TEXT,
		client_type TEXT,
		last_contact TEXT,
		portal_access_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		project_name TEXT NOT NULL,
		client_name TEXT,
		client_id TEXT,
		project_type TEXT,
		package_name TEXT,
		package_id TEXT,
		add_ons JSONB,
		date TEXT,
		deadline_date TEXT,
		location TEXT,
		progress DOUBLE PRECISION,
		status TEXT,
		active_sub_statuses JSONB,
		total_cost DOUBLE PRECISION,
		amount_paid DOUBLE PRECISION,
		payment_status TEXT,
		team JSONB,
		notes TEXT,
		accommodation TEXT,
		drive_link TEXT,
		client_drive_link TEXT,
		final_drive_link TEXT,
		start_time TEXT,
		end_time TEXT,
		image TEXT,
		promo_code_id TEXT,
		discount_amount DOUBLE PRECISION,
		shipping_details TEXT,
		dp_proof_url TEXT,
		printing_details JSONB,
		printing_cost DOUBLE PRECISION,
		transport_cost DOUBLE PRECISION,
		is_editing_confirmed_by_client BOOLEAN,
		is_printing_confirmed_by_client BOOLEAN,
		is_delivery_confirmed_by_client BOOLEAN,
		confirmed_sub_statuses JSONB,
		client_sub_status_notes JSONB,
		sub_status_confirmation_sent_at JSONB,
		completed_digital_items JSONB,
		invoice_signature TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS revisions (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		project_id TEXT NOT NULL,
		date TEXT,
		admin_notes TEXT,
		deadline TEXT,
		freelancer_id TEXT,
		status TEXT,
		freelancer_notes TEXT,
		drive_link TEXT,
		completed_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		name TEXT NOT NULL,
		role TEXT,
		email TEXT,
		phone TEXT,
		standard_fee DOUBLE PRECISION,
		no_rek TEXT,
		reward_balance DOUBLE PRECISION,
		rating DOUBLE PRECISION,
		performance_notes JSONB,
		portal_access_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		date TEXT,
		description TEXT,
		amount DOUBLE PRECISION,
		type TEXT,
		project_id TEXT,
		category TEXT,
		method TEXT,
		pocket_id TEXT,
		card_id TEXT,
		printing_item_id TEXT,
		vendor_signature TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		name TEXT NOT NULL,
		price DOUBLE PRECISION,
		physical_items JSONB,
		digital_items JSONB,
		processing_time TEXT,
		photographers TEXT,
		videographers TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS add_ons (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		name TEXT NOT NULL,
		price DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		card_holder_name TEXT,
		bank_name TEXT,
		card_type TEXT,
		last_four_digits TEXT,
		expiry_date TEXT,
		balance DOUBLE PRECISION,
		color_gradient TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS financial_pockets (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		name TEXT NOT NULL,
		description TEXT,
		icon TEXT,
		type TEXT,
		amount DOUBLE PRECISION,
		goal_amount DOUBLE PRECISION,
		lock_end_date TEXT,
		members JSONB,
		source_card_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		name TEXT NOT NULL,
		contact_channel TEXT,
		location TEXT,
		status TEXT,
		date TEXT,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		name TEXT NOT NULL,
		category TEXT,
		purchase_date TEXT,
		purchase_price DOUBLE PRECISION,
		serial_number TEXT,
		status TEXT,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		contract_number TEXT,
		client_id TEXT,
		project_id TEXT,
		signing_date TEXT,
		signing_location TEXT,
		client_name1 TEXT,
		client_address1 TEXT,
		client_phone1 TEXT,
		client_name2 TEXT,
		client_address2 TEXT,
		client_phone2 TEXT,
		shooting_duration TEXT,
		guaranteed_photos TEXT,
		album_details TEXT,
		digital_files_format TEXT,
		other_items TEXT,
		personnel_count TEXT,
		delivery_timeframe TEXT,
		dp_date TEXT,
		final_payment_date TEXT,
		cancellation_policy TEXT,
		jurisdiction TEXT,
		vendor_signature TEXT,
		client_signature TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS client_feedback (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		client_name TEXT,
		satisfaction TEXT,
		rating DOUBLE PRECISION,
		feedback TEXT,
		date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS social_media_posts (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		project_id TEXT,
		client_name TEXT,
		post_type TEXT,
		platform TEXT,
		scheduled_date TEXT,
		caption TEXT,
		media_url TEXT,
		status TEXT,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS promo_codes (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		code TEXT NOT NULL,
		discount_type TEXT,
		discount_value DOUBLE PRECISION,
		is_active BOOLEAN,
		usage_count DOUBLE PRECISION,
		max_usage DOUBLE PRECISION,
		expiry_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sops (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		title TEXT NOT NULL,
		category TEXT,
		content TEXT,
		last_updated TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		title TEXT,
		message TEXT,
		timestamp TEXT,
		is_read BOOLEAN,
		icon TEXT,
		link TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS team_project_payments (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		project_id TEXT,
		team_member_name TEXT,
		team_member_id TEXT,
		date TEXT,
		status TEXT,
		fee DOUBLE PRECISION,
		reward DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS team_payment_records (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		record_number TEXT,
		team_member_id TEXT,
		date TEXT,
		project_payment_ids JSONB,
		total_amount DOUBLE PRECISION,
		vendor_signature TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS reward_ledger_entries (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		team_member_id TEXT,
		date TEXT,
		description TEXT,
		amount DOUBLE PRECISION,
		project_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS profile (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		full_name TEXT,
		email TEXT,
		phone TEXT,
		company_name TEXT,
		website TEXT,
		address TEXT,
		bank_account TEXT,
		authorized_signer TEXT,
		id_number TEXT,
		bio TEXT,
		income_categories JSONB,
		expense_categories JSONB,
		project_types JSONB,
		event_types JSONB,
		asset_categories JSONB,
		sop_categories JSONB,
		project_status_config JSONB,
		notification_settings JSONB,
		security_settings JSONB,
		briefing_template TEXT,
		terms_and_conditions TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_revisions_project_id ON revisions (project_id)`,
}

// InitSchema creates all application tables if they do not exist.
func (c *Client) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	c.log.Info("schema initialized", "statements", len(schemaStatements))
	return nil
}
