// ABOUTME: Mapping tables for every remote table the application reads or writes
// ABOUTME: Collections default to creation-time ordering; lookup tables sort by name
package remote

// ClientsTable maps the clients table.
var ClientsTable = Mapping{
	Table: "clients", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "name", Column: "name"},
		{Name: "email", Column: "email"},
		{Name: "phone", Column: "phone"},
		{Name: "instagram", Column: "instagram"},
		{Name: "since", Column: "since"},
		{Name: "status", Column: "status"},
		{Name: "clientType", Column: "client_type"},
		{Name: "lastContact", Column: "last_contact"},
		{Name: "portalAccessId", Column: "portal_access_id"},
	},
}

// ProjectsTable maps the projects table. Revisions are not a column;
// the project API attaches them from their own table.
var ProjectsTable = Mapping{
	Table: "projects", OrderBy: "date", Descending: true,
	Fields: []Field{
		{Name: "projectName", Column: "project_name"},
		{Name: "clientName", Column: "client_name"},
		{Name: "clientId", Column: "client_id"},
		{Name: "projectType", Column: "project_type"},
		{Name: "packageName", Column: "package_name"},
		{Name: "packageId", Column: "package_id"},
		{Name: "addOns", Column: "add_ons", Kind: List},
		{Name: "date", Column: "date"},
		{Name: "deadlineDate", Column: "deadline_date"},
		{Name: "location", Column: "location"},
		{Name: "progress", Column: "progress"},
		{Name: "status", Column: "status"},
		{Name: "activeSubStatuses", Column: "active_sub_statuses", Kind: List},
		{Name: "totalCost", Column: "total_cost"},
		{Name: "amountPaid", Column: "amount_paid"},
		{Name: "paymentStatus", Column: "payment_status"},
		{Name: "team", Column: "team", Kind: List},
		{Name: "notes", Column: "notes"},
		{Name: "accommodation", Column: "accommodation"},
		{Name: "driveLink", Column: "drive_link"},
		{Name: "clientDriveLink", Column: "client_drive_link"},
		{Name: "finalDriveLink", Column: "final_drive_link"},
		{Name: "startTime", Column: "start_time"},
		{Name: "endTime", Column: "end_time"},
		{Name: "image", Column: "image"},
		{Name: "promoCodeId", Column: "promo_code_id"},
		{Name: "discountAmount", Column: "discount_amount"},
		{Name: "shippingDetails", Column: "shipping_details"},
		{Name: "dpProofUrl", Column: "dp_proof_url"},
		{Name: "printingDetails", Column: "printing_details", Kind: List},
		{Name: "printingCost", Column: "printing_cost"},
		{Name: "transportCost", Column: "transport_cost"},
		{Name: "isEditingConfirmedByClient", Column: "is_editing_confirmed_by_client"},
		{Name: "isPrintingConfirmedByClient", Column: "is_printing_confirmed_by_client"},
		{Name: "isDeliveryConfirmedByClient", Column: "is_delivery_confirmed_by_client"},
		{Name: "confirmedSubStatuses", Column: "confirmed_sub_statuses", Kind: List},
		{Name: "clientSubStatusNotes", Column: "client_sub_status_notes", Kind: Map},
		{Name: "subStatusConfirmationSentAt", Column: "sub_status_confirmation_sent_at", Kind: Map},
		{Name: "completedDigitalItems", Column: "completed_digital_items", Kind: List},
		{Name: "invoiceSignature", Column: "invoice_signature"},
	},
}

// RevisionsTable maps the revisions table, queried per project.
var RevisionsTable = Mapping{
	Table: "revisions", OrderBy: "date", Descending: true,
	Fields: []Field{
		{Name: "projectId", Column: "project_id"},
		{Name: "date", Column: "date"},
		{Name: "adminNotes", Column: "admin_notes"},
		{Name: "deadline", Column: "deadline"},
		{Name: "freelancerId", Column: "freelancer_id"},
		{Name: "status", Column: "status"},
		{Name: "freelancerNotes", Column: "freelancer_notes"},
		{Name: "driveLink", Column: "drive_link"},
		{Name: "completedDate", Column: "completed_date"},
	},
}

// TeamMembersTable maps the team_members lookup table.
var TeamMembersTable = Mapping{
	Table: "team_members", OrderBy: "name",
	Fields: []Field{
		{Name: "name", Column: "name"},
		{Name: "role", Column: "role"},
		{Name: "email", Column: "email"},
		{Name: "phone", Column: "phone"},
		{Name: "standardFee", Column: "standard_fee"},
		{Name: "noRek", Column: "no_rek"},
		{Name: "rewardBalance", Column: "reward_balance"},
		{Name: "rating", Column: "rating"},
		{Name: "performanceNotes", Column: "performance_notes", Kind: List},
		{Name: "portalAccessId", Column: "portal_access_id"},
	},
}

// TransactionsTable maps the transactions ledger.
var TransactionsTable = Mapping{
	Table: "transactions", OrderBy: "date", Descending: true,
	Fields: []Field{
		{Name: "date", Column: "date"},
		{Name: "description", Column: "description"},
		{Name: "amount", Column: "amount"},
		{Name: "type", Column: "type"},
		{Name: "projectId", Column: "project_id"},
		{Name: "category", Column: "category"},
		{Name: "method", Column: "method"},
		{Name: "pocketId", Column: "pocket_id"},
		{Name: "cardId", Column: "card_id"},
		{Name: "printingItemId", Column: "printing_item_id"},
		{Name: "vendorSignature", Column: "vendor_signature"},
	},
}

// PackagesTable maps the packages lookup table.
var PackagesTable = Mapping{
	Table: "packages", OrderBy: "name",
	Fields: []Field{
		{Name: "name", Column: "name"},
		{Name: "price", Column: "price"},
		{Name: "physicalItems", Column: "physical_items", Kind: List},
		{Name: "digitalItems", Column: "digital_items", Kind: List},
		{Name: "processingTime", Column: "processing_time"},
		{Name: "photographers", Column: "photographers"},
		{Name: "videographers", Column: "videographers"},
	},
}

// AddOnsTable maps the add_ons lookup table.
var AddOnsTable = Mapping{
	Table: "add_ons", OrderBy: "name",
	Fields: []Field{
		{Name: "name", Column: "name"},
		{Name: "price", Column: "price"},
	},
}

// CardsTable maps the cards table.
var CardsTable = Mapping{
	Table: "cards", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "cardHolderName", Column: "card_holder_name"},
		{Name: "bankName", Column: "bank_name"},
		{Name: "cardType", Column: "card_type"},
		{Name: "lastFourDigits", Column: "last_four_digits"},
		{Name: "expiryDate", Column: "expiry_date"},
		{Name: "balance", Column: "balance"},
		{Name: "colorGradient", Column: "color_gradient"},
	},
}

// PocketsTable maps the financial_pockets table.
var PocketsTable = Mapping{
	Table: "financial_pockets", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "name", Column: "name"},
		{Name: "description", Column: "description"},
		{Name: "icon", Column: "icon"},
		{Name: "type", Column: "type"},
		{Name: "amount", Column: "amount"},
		{Name: "goalAmount", Column: "goal_amount"},
		{Name: "lockEndDate", Column: "lock_end_date"},
		{Name: "members", Column: "members", Kind: List},
		{Name: "sourceCardId", Column: "source_card_id"},
	},
}

// LeadsTable maps the leads table.
var LeadsTable = Mapping{
	Table: "leads", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "name", Column: "name"},
		{Name: "contactChannel", Column: "contact_channel"},
		{Name: "location", Column: "location"},
		{Name: "status", Column: "status"},
		{Name: "date", Column: "date"},
		{Name: "notes", Column: "notes"},
	},
}

// AssetsTable maps the assets table.
var AssetsTable = Mapping{
	Table: "assets", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "name", Column: "name"},
		{Name: "category", Column: "category"},
		{Name: "purchaseDate", Column: "purchase_date"},
		{Name: "purchasePrice", Column: "purchase_price"},
		{Name: "serialNumber", Column: "serial_number"},
		{Name: "status", Column: "status"},
		{Name: "notes", Column: "notes"},
	},
}

// ContractsTable maps the contracts table.
var ContractsTable = Mapping{
	Table: "contracts", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "contractNumber", Column: "contract_number"},
		{Name: "clientId", Column: "client_id"},
		{Name: "projectId", Column: "project_id"},
		{Name: "signingDate", Column: "signing_date"},
		{Name: "signingLocation", Column: "signing_location"},
		{Name: "clientName1", Column: "client_name1"},
		{Name: "clientAddress1", Column: "client_address1"},
		{Name: "clientPhone1", Column: "client_phone1"},
		{Name: "clientName2", Column: "client_name2"},
		{Name: "clientAddress2", Column: "client_address2"},
		{Name: "clientPhone2", Column: "client_phone2"},
		{Name: "shootingDuration", Column: "shooting_duration"},
		{Name: "guaranteedPhotos", Column: "guaranteed_photos"},
		{Name: "albumDetails", Column: "album_details"},
		{Name: "digitalFilesFormat", Column: "digital_files_format"},
		{Name: "otherItems", Column: "other_items"},
		{Name: "personnelCount", Column: "personnel_count"},
		{Name: "deliveryTimeframe", Column: "delivery_timeframe"},
		{Name: "dpDate", Column: "dp_date"},
		{Name: "finalPaymentDate", Column: "final_payment_date"},
		{Name: "cancellationPolicy", Column: "cancellation_policy"},
		{Name: "jurisdiction", Column: "jurisdiction"},
		{Name: "vendorSignature", Column: "vendor_signature"},
		{Name: "clientSignature", Column: "client_signature"},
	},
}

// ClientFeedbackTable maps the client_feedback table.
var ClientFeedbackTable = Mapping{
	Table: "client_feedback", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "clientName", Column: "client_name"},
		{Name: "satisfaction", Column: "satisfaction"},
		{Name: "rating", Column: "rating"},
		{Name: "feedback", Column: "feedback"},
		{Name: "date", Column: "date"},
	},
}

// SocialMediaPostsTable maps the social_media_posts table.
var SocialMediaPostsTable = Mapping{
	Table: "social_media_posts", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "projectId", Column: "project_id"},
		{Name: "clientName", Column: "client_name"},
		{Name: "postType", Column: "post_type"},
		{Name: "platform", Column: "platform"},
		{Name: "scheduledDate", Column: "scheduled_date"},
		{Name: "caption", Column: "caption"},
		{Name: "mediaUrl", Column: "media_url"},
		{Name: "status", Column: "status"},
		{Name: "notes", Column: "notes"},
	},
}

// PromoCodesTable maps the promo_codes table.
var PromoCodesTable = Mapping{
	Table: "promo_codes", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "code", Column: "code"},
		{Name: "discountType", Column: "discount_type"},
		{Name: "discountValue", Column: "discount_value"},
		{Name: "isActive", Column: "is_active"},
		{Name: "usageCount", Column: "usage_count"},
		{Name: "maxUsage", Column: "max_usage"},
		{Name: "expiryDate", Column: "expiry_date"},
	},
}

// SOPsTable maps the sops table.
var SOPsTable = Mapping{
	Table: "sops", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "title", Column: "title"},
		{Name: "category", Column: "category"},
		{Name: "content", Column: "content"},
		{Name: "lastUpdated", Column: "last_updated"},
	},
}

// NotificationsTable maps the notifications table.
var NotificationsTable = Mapping{
	Table: "notifications", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "title", Column: "title"},
		{Name: "message", Column: "message"},
		{Name: "timestamp", Column: "timestamp"},
		{Name: "isRead", Column: "is_read"},
		{Name: "icon", Column: "icon"},
		{Name: "link", Column: "link"},
	},
}

// TeamProjectPaymentsTable maps the team_project_payments table.
var TeamProjectPaymentsTable = Mapping{
	Table: "team_project_payments", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "projectId", Column: "project_id"},
		{Name: "teamMemberName", Column: "team_member_name"},
		{Name: "teamMemberId", Column: "team_member_id"},
		{Name: "date", Column: "date"},
		{Name: "status", Column: "status"},
		{Name: "fee", Column: "fee"},
		{Name: "reward", Column: "reward"},
	},
}

// TeamPaymentRecordsTable maps the team_payment_records table.
var TeamPaymentRecordsTable = Mapping{
	Table: "team_payment_records", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "recordNumber", Column: "record_number"},
		{Name: "teamMemberId", Column: "team_member_id"},
		{Name: "date", Column: "date"},
		{Name: "projectPaymentIds", Column: "project_payment_ids", Kind: List},
		{Name: "totalAmount", Column: "total_amount"},
		{Name: "vendorSignature", Column: "vendor_signature"},
	},
}

// RewardLedgerEntriesTable maps the reward_ledger_entries table.
var RewardLedgerEntriesTable = Mapping{
	Table: "reward_ledger_entries", OrderBy: "created_at", Descending: true,
	Fields: []Field{
		{Name: "teamMemberId", Column: "team_member_id"},
		{Name: "date", Column: "date"},
		{Name: "description", Column: "description"},
		{Name: "amount", Column: "amount"},
		{Name: "projectId", Column: "project_id"},
	},
}

// ProfileTable maps the singleton profile table. The row id stays
// internal to the remote layer.
var ProfileTable = Mapping{
	Table: "profile", Singleton: true,
	Fields: []Field{
		{Name: "fullName", Column: "full_name"},
		{Name: "email", Column: "email"},
		{Name: "phone", Column: "phone"},
		{Name: "companyName", Column: "company_name"},
		{Name: "website", Column: "website"},
		{Name: "address", Column: "address"},
		{Name: "bankAccount", Column: "bank_account"},
		{Name: "authorizedSigner", Column: "authorized_signer"},
		{Name: "idNumber", Column: "id_number"},
		{Name: "bio", Column: "bio"},
		{Name: "incomeCategories", Column: "income_categories", Kind: List},
		{Name: "expenseCategories", Column: "expense_categories", Kind: List},
		{Name: "projectTypes", Column: "project_types", Kind: List},
		{Name: "eventTypes", Column: "event_types", Kind: List},
		{Name: "assetCategories", Column: "asset_categories", Kind: List},
		{Name: "sopCategories", Column: "sop_categories", Kind: List},
		{Name: "projectStatusConfig", Column: "project_status_config", Kind: List},
		{Name: "notificationSettings", Column: "notification_settings", Kind: Map},
		{Name: "securitySettings", Column: "security_settings", Kind: Map},
		{Name: "briefingTemplate", Column: "briefing_template"},
		{Name: "termsAndConditions", Column: "terms_and_conditions"},
	},
}
