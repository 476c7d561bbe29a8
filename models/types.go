// ABOUTME: Data models for studio back-office entities
// ABOUTME: Defines Client, Project, TeamMember, Transaction and related structs
package models

// Client is a customer of the studio.
type Client struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Instagram      string `json:"instagram"`
	Since          string `json:"since"`
	Status         string `json:"status"`
	ClientType     string `json:"clientType"`
	LastContact    string `json:"lastContact"`
	PortalAccessID string `json:"portalAccessId"`
}

// ProjectTeamAssignment is one team member booked on a project, with the
// fee and reward agreed for that project.
type ProjectTeamAssignment struct {
	MemberID string  `json:"memberId"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Fee      float64 `json:"fee"`
	Reward   float64 `json:"reward"`
}

// PrintingItem is one physical deliverable ordered for a project.
type PrintingItem struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	CustomName string  `json:"customName"`
	Details    string  `json:"details"`
	Cost       float64 `json:"cost"`
}

// Project is the richest entity: a booked shoot with costs, schedule,
// deliverables and its owned revisions. Revisions live in their own
// table and are loaded in a second round-trip, never from the projects
// table itself.
type Project struct {
	ID                          string                  `json:"id"`
	ProjectName                 string                  `json:"projectName"`
	ClientName                  string                  `json:"clientName"`
	ClientID                    string                  `json:"clientId"`
	ProjectType                 string                  `json:"projectType"`
	PackageName                 string                  `json:"packageName"`
	PackageID                   string                  `json:"packageId"`
	AddOns                      []AddOn                 `json:"addOns"`
	Date                        string                  `json:"date"`
	DeadlineDate                string                  `json:"deadlineDate"`
	Location                    string                  `json:"location"`
	Progress                    int                     `json:"progress"`
	Status                      string                  `json:"status"`
	ActiveSubStatuses           []string                `json:"activeSubStatuses"`
	TotalCost                   float64                 `json:"totalCost"`
	AmountPaid                  float64                 `json:"amountPaid"`
	PaymentStatus               string                  `json:"paymentStatus"`
	Team                        []ProjectTeamAssignment `json:"team"`
	Notes                       string                  `json:"notes"`
	Accommodation               string                  `json:"accommodation"`
	DriveLink                   string                  `json:"driveLink"`
	ClientDriveLink             string                  `json:"clientDriveLink"`
	FinalDriveLink              string                  `json:"finalDriveLink"`
	StartTime                   string                  `json:"startTime"`
	EndTime                     string                  `json:"endTime"`
	Image                       string                  `json:"image"`
	PromoCodeID                 string                  `json:"promoCodeId"`
	DiscountAmount              float64                 `json:"discountAmount"`
	ShippingDetails             string                  `json:"shippingDetails"`
	DPProofURL                  string                  `json:"dpProofUrl"`
	PrintingDetails             []PrintingItem          `json:"printingDetails"`
	PrintingCost                float64                 `json:"printingCost"`
	TransportCost               float64                 `json:"transportCost"`
	IsEditingConfirmedByClient  bool                    `json:"isEditingConfirmedByClient"`
	IsPrintingConfirmedByClient bool                    `json:"isPrintingConfirmedByClient"`
	IsDeliveryConfirmedByClient bool                    `json:"isDeliveryConfirmedByClient"`
	ConfirmedSubStatuses        []string                `json:"confirmedSubStatuses"`
	ClientSubStatusNotes        map[string]string       `json:"clientSubStatusNotes"`
	SubStatusConfirmationSentAt map[string]string       `json:"subStatusConfirmationSentAt"`
	CompletedDigitalItems       []string                `json:"completedDigitalItems"`
	InvoiceSignature            string                  `json:"invoiceSignature"`
	Revisions                   []Revision              `json:"revisions"`
}

// Revision is an edit round owned by exactly one project and assigned to
// one freelancer.
type Revision struct {
	ID              string `json:"id"`
	ProjectID       string `json:"projectId"`
	Date            string `json:"date"`
	AdminNotes      string `json:"adminNotes"`
	Deadline        string `json:"deadline"`
	FreelancerID    string `json:"freelancerId"`
	Status          string `json:"status"`
	FreelancerNotes string `json:"freelancerNotes"`
	DriveLink       string `json:"driveLink"`
	CompletedDate   string `json:"completedDate"`
}

// TeamMember is a freelancer or staff member bookable on projects.
type TeamMember struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	StandardFee      float64  `json:"standardFee"`
	NoRek            string   `json:"noRek"`
	RewardBalance    float64  `json:"rewardBalance"`
	Rating           float64  `json:"rating"`
	PerformanceNotes []string `json:"performanceNotes"`
	PortalAccessID   string   `json:"portalAccessId"`
}

// Transaction is a ledger entry, loosely linked to a project, pocket or
// card through optional ids.
type Transaction struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	ProjectID       string  `json:"projectId"`
	Category        string  `json:"category"`
	Method          string  `json:"method"`
	PocketID        string  `json:"pocketId"`
	CardID          string  `json:"cardId"`
	PrintingItemID  string  `json:"printingItemId"`
	VendorSignature string  `json:"vendorSignature"`
}

// PhysicalItem is one physical deliverable included in a package.
type PhysicalItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Package is a service bundle referenced by projects via id and a
// denormalized name.
type Package struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Price          float64        `json:"price"`
	PhysicalItems  []PhysicalItem `json:"physicalItems"`
	DigitalItems   []string       `json:"digitalItems"`
	ProcessingTime string         `json:"processingTime"`
	Photographers  string         `json:"photographers"`
	Videographers  string         `json:"videographers"`
}

// AddOn is a purchasable extra attached to a project.
type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Card is a payment card with a tracked balance.
type Card struct {
	ID             string  `json:"id"`
	CardHolderName string  `json:"cardHolderName"`
	BankName       string  `json:"bankName"`
	CardType       string  `json:"cardType"`
	LastFourDigits string  `json:"lastFourDigits"`
	ExpiryDate     string  `json:"expiryDate"`
	Balance        float64 `json:"balance"`
	ColorGradient  string  `json:"colorGradient"`
}

// FinancialPocket is a budget envelope (saving, locked, shared expense).
type FinancialPocket struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Type         string   `json:"type"`
	Amount       float64  `json:"amount"`
	GoalAmount   float64  `json:"goalAmount"`
	LockEndDate  string   `json:"lockEndDate"`
	Members      []string `json:"members"`
	SourceCardID string   `json:"sourceCardId"`
}

// Lead is a prospect that has not converted to a client yet.
type Lead struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ContactChannel string `json:"contactChannel"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Date           string `json:"date"`
	Notes          string `json:"notes"`
}

// Asset is a piece of studio equipment.
type Asset struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchasePrice float64 `json:"purchasePrice"`
	SerialNumber  string  `json:"serialNumber"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

// Contract is the signed agreement backing a project.
type Contract struct {
	ID                 string `json:"id"`
	ContractNumber     string `json:"contractNumber"`
	ClientID           string `json:"clientId"`
	ProjectID          string `json:"projectId"`
	SigningDate        string `json:"signingDate"`
	SigningLocation    string `json:"signingLocation"`
	ClientName1        string `json:"clientName1"`
	ClientAddress1     string `json:"clientAddress1"`
	ClientPhone1       string `json:"clientPhone1"`
	ClientName2        string `json:"clientName2"`
	ClientAddress2     string `json:"clientAddress2"`
	ClientPhone2       string `json:"clientPhone2"`
	ShootingDuration   string `json:"shootingDuration"`
	GuaranteedPhotos   string `json:"guaranteedPhotos"`
	AlbumDetails       string `json:"albumDetails"`
	DigitalFilesFormat string `json:"digitalFilesFormat"`
	OtherItems         string `json:"otherItems"`
	PersonnelCount     string `json:"personnelCount"`
	DeliveryTimeframe  string `json:"deliveryTimeframe"`
	DPDate             string `json:"dpDate"`
	FinalPaymentDate   string `json:"finalPaymentDate"`
	CancellationPolicy string `json:"cancellationPolicy"`
	Jurisdiction       string `json:"jurisdiction"`
	VendorSignature    string `json:"vendorSignature"`
	ClientSignature    string `json:"clientSignature"`
}

// ClientFeedback is a satisfaction survey response.
type ClientFeedback struct {
	ID           string `json:"id"`
	ClientName   string `json:"clientName"`
	Satisfaction string `json:"satisfaction"`
	Rating       int    `json:"rating"`
	Feedback     string `json:"feedback"`
	Date         string `json:"date"`
}

// SocialMediaPost is a scheduled promotional post tied to a project.
type SocialMediaPost struct {
	ID            string `json:"id"`
	ProjectID     string `json:"projectId"`
	ClientName    string `json:"clientName"`
	PostType      string `json:"postType"`
	Platform      string `json:"platform"`
	ScheduledDate string `json:"scheduledDate"`
	Caption       string `json:"caption"`
	MediaURL      string `json:"mediaUrl"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

// PromoCode is a discount code applied to projects at booking time.
type PromoCode struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	IsActive      bool    `json:"isActive"`
	UsageCount    int     `json:"usageCount"`
	MaxUsage      int     `json:"maxUsage"`
	ExpiryDate    string  `json:"expiryDate"`
}

// SOP is a standard operating procedure document.
type SOP struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated"`
}

// Notification is an in-app notification shown on the dashboard.
type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"isRead"`
	Icon      string `json:"icon"`
	Link      string `json:"link"`
}

// TeamProjectPayment is a single fee owed to a team member for one
// project.
type TeamProjectPayment struct {
	ID             string  `json:"id"`
	ProjectID      string  `json:"projectId"`
	TeamMemberName string  `json:"teamMemberName"`
	TeamMemberID   string  `json:"teamMemberId"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	Fee            float64 `json:"fee"`
	Reward         float64 `json:"reward"`
}

// TeamPaymentRecord is a payout slip bundling several project payments.
type TeamPaymentRecord struct {
	ID                string   `json:"id"`
	RecordNumber      string   `json:"recordNumber"`
	TeamMemberID      string   `json:"teamMemberId"`
	Date              string   `json:"date"`
	ProjectPaymentIDs []string `json:"projectPaymentIds"`
	TotalAmount       float64  `json:"totalAmount"`
	VendorSignature   string   `json:"vendorSignature"`
}

// RewardLedgerEntry tracks reward balance movements for a team member.
type RewardLedgerEntry struct {
	ID           string  `json:"id"`
	TeamMemberID string  `json:"teamMemberId"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	ProjectID    string  `json:"projectId"`
}

// ProjectStatusConfig is one configurable status column with its
// sub-statuses, stored as part of the profile.
type ProjectStatusConfig struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	SubStatuses []string `json:"subStatuses"`
	Note        string   `json:"note"`
}

// Profile is the singleton vendor profile. It has no id exposed to the
// application and no delete operation; updates go through an
// existence-checked upsert.
type Profile struct {
	FullName             string                `json:"fullName"`
	Email                string                `json:"email"`
	Phone                string                `json:"phone"`
	CompanyName          string                `json:"companyName"`
	Website              string                `json:"website"`
	Address              string                `json:"address"`
	BankAccount          string                `json:"bankAccount"`
	AuthorizedSigner     string                `json:"authorizedSigner"`
	IDNumber             string                `json:"idNumber"`
	Bio                  string                `json:"bio"`
	IncomeCategories     []string              `json:"incomeCategories"`
	ExpenseCategories    []string              `json:"expenseCategories"`
	ProjectTypes         []string              `json:"projectTypes"`
	EventTypes           []string              `json:"eventTypes"`
	AssetCategories      []string              `json:"assetCategories"`
	SOPCategories        []string              `json:"sopCategories"`
	ProjectStatusConfig  []ProjectStatusConfig `json:"projectStatusConfig"`
	NotificationSettings map[string]bool       `json:"notificationSettings"`
	SecuritySettings     map[string]bool       `json:"securitySettings"`
	BriefingTemplate     string                `json:"briefingTemplate"`
	TermsAndConditions   string                `json:"termsAndConditions"`
}

// Client status constants.
const (
	ClientStatusProspect = "Prospek"
	ClientStatusActive   = "Aktif"
	ClientStatusInactive = "Tidak Aktif"
	ClientStatusLost     = "Hilang"
)

// Payment status constants.
const (
	PaymentStatusPaid    = "Lunas"
	PaymentStatusPartial = "DP Terbayar"
	PaymentStatusUnpaid  = "Belum Bayar"
)

// Transaction type constants.
const (
	TransactionTypeIncome  = "Pemasukan"
	TransactionTypeExpense = "Pengeluaran"
)

// Pocket type constants.
const (
	PocketTypeSaving     = "Nabung & Bayar"
	PocketTypeLocked     = "Terkunci"
	PocketTypeShared     = "Bersama"
	PocketTypeExpense    = "Anggaran Pengeluaran"
	PocketTypeRewardPool = "Tabungan Hadiah Freelancer"
)

// Lead status constants.
const (
	LeadStatusDiscussion = "Sedang Diskusi"
	LeadStatusFollowUp   = "Menunggu Follow Up"
	LeadStatusConverted  = "Dikonversi"
	LeadStatusRejected   = "Ditolak"
)

// Revision status constants.
const (
	RevisionStatusPending    = "Menunggu Revisi"
	RevisionStatusInProgress = "Sedang Dikerjakan"
	RevisionStatusCompleted  = "Revisi Selesai"
)

// Social media post status constants.
const (
	PostStatusDraft     = "Draf"
	PostStatusScheduled = "Terjadwal"
	PostStatusPosted    = "Diposting"
	PostStatusCanceled  = "Dibatalkan"
)
