package api

import (
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// MemberInput is one covered person in a purchase request. The first element of a
// members list is the primary covered person.
type MemberInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IDNumber    string `json:"id_number"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	Town        string `json:"town"`
	Country     string `json:"country"`

	Premium     decimal.Decimal `json:"premium"`
	CoverAmount decimal.Decimal `json:"cover_amount"`
}

type DependentInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	IDNumber       string `json:"id_number"`
	PassportNumber string `json:"passport_number"`
	Gender         string `json:"gender"`
	Relationship   string `json:"relationship"`
	DateOfBirth    string `json:"date_of_birth"`

	// correlation key used by the group channel to attach this dependent to a member
	MainMemberIDNumber string `json:"main_member_id_number,omitempty"`

	Premium     decimal.Decimal `json:"premium"`
	CoverAmount decimal.Decimal `json:"cover_amount"`
}

// BeneficiaryInput carries a payout share only; beneficiaries never contribute to
// premium or cover totals.
type BeneficiaryInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	IDNumber       string `json:"id_number"`
	PassportNumber string `json:"passport_number"`
	Gender         string `json:"gender"`
	Relationship   string `json:"relationship"`
	DateOfBirth    string `json:"date_of_birth"`

	MainMemberIDNumber string `json:"main_member_id_number,omitempty"`

	Percentage decimal.Decimal `json:"percentage"`
}

type CreditorInput struct {
	CreditorName             string `json:"creditor_name"`
	ContactPersonName        string `json:"contact_person_name"`
	ContactPersonEmail       string `json:"contact_person_email"`
	ContactPersonPhoneNumber string `json:"contact_person_phone_number"`
	Address                  string `json:"address"`
	Town                     string `json:"town"`
	Country                  string `json:"country"`
	DateRegistered           string `json:"date_registered"`
	LoanReference            string `json:"loan_reference"`

	LoanAmount         decimal.Decimal `json:"loan_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Premium            decimal.Decimal `json:"premium"`
	TermMonths         int             `json:"term_months"`
	DecliningTerm      bool            `json:"declining_term"`
}

// DeviceInput describes one insured gadget; either the IMEI or the serial number
// must identify the device.
type DeviceInput struct {
	DeviceType   string          `json:"device_type"`
	DeviceBrand  string          `json:"device_brand"`
	DeviceModel  string          `json:"device_model"`
	PurchaseDate string          `json:"purchase_date"`
	DeviceCost   decimal.Decimal `json:"device_cost"`
	Description  string          `json:"description"`
	IMEINumber   string          `json:"imei_number"`
	SerialNumber string          `json:"serial_number"`
}

type PaymentDetailsInput struct {
	BankName       string `json:"bank_name"`
	AccountType    string `json:"account_type"`
	AccountName    string `json:"account_name"`
	AccountNumber  string `json:"account_number"`
	BranchCode     string `json:"branch_code"`
	DebitOrderDate string `json:"debit_order_date"`
	SourceOfFunds  string `json:"source_of_funds"`
	PhoneNumber    string `json:"phone_number"`
	PaymentMethod  string `json:"payment_method"`
}

// RetailPurchaseInput is the payload for an individual (retail) policy purchase
type RetailPurchaseInput struct {
	Product        int                  `json:"product"`
	StartDate      string               `json:"start_date"`
	Members        []MemberInput        `json:"members"`
	Dependents     []DependentInput     `json:"dependents"`
	Beneficiaries  []BeneficiaryInput   `json:"beneficiaries"`
	PaymentDetails *PaymentDetailsInput `json:"payment_details"`
}

// GroupPurchaseInput is the payload for a group/scheme policy purchase. Dependents
// and beneficiaries are flat lists correlated to members by main_member_id_number.
type GroupPurchaseInput struct {
	Product        int                  `json:"product"`
	StartDate      string               `json:"start_date"`
	Members        []MemberInput        `json:"members"`
	Dependents     []DependentInput     `json:"dependents"`
	Beneficiaries  []BeneficiaryInput   `json:"beneficiaries"`
	PaymentDetails *PaymentDetailsInput `json:"payment_details"`
}

// CreditLifePurchaseInput is the payload for a credit-life policy purchase
type CreditLifePurchaseInput struct {
	Product        int                  `json:"product"`
	StartDate      string               `json:"start_date"`
	Members        []MemberInput        `json:"members"`
	Creditors      []CreditorInput      `json:"creditors"`
	PaymentDetails *PaymentDetailsInput `json:"payment_details"`
}

// GadgetPurchaseInput is the payload for a gadget policy sale. The premium and
// cover amount are quoted up front from the referenced pricing tier and pass
// straight through to the policy; only the first device is insured.
type GadgetPurchaseInput struct {
	Pricing        int                  `json:"pricing"`
	Seller         int                  `json:"seller,omitempty"`
	CoverAmount    decimal.Decimal      `json:"cover_amount"`
	Premium        decimal.Decimal      `json:"premium"`
	StartDate      string               `json:"start_date"`
	PolicyOwner    *MemberInput         `json:"policy_owner"`
	Devices        []DeviceInput        `json:"devices"`
	PaymentDetails *PaymentDetailsInput `json:"payment_details"`
}

// PurchaseResult is returned on a committed purchase
type PurchaseResult struct {
	// unique policy ID
	//
	// swagger:strfmt uuid4
	PolicyID uuid.UUID `json:"policy_id"`

	// human-readable policy number, unique within the product's numbering scheme
	PolicyNumber string `json:"policy_number"`

	// membership ID, omitted for group purchases which create one membership per member
	MembershipID *uuid.UUID `json:"membership_id,omitempty"`
}
