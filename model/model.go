// Package model holds the wire types shared by the API server and the
// client-side controllers. Field names follow the backend columns; every
// struct round-trips through both sqlx and encoding/json.
package model

type Party struct {
	Id      int    `db:"id" json:"id,omitempty"`
	Name    string `db:"name" json:"name" validate:"required"`
	Contact string `db:"contact" json:"contact"`
	Address string `db:"address" json:"address"`
	Gstin   string `db:"gstin" json:"gstin"`
}

// Challan rows returned by the list and search endpoints carry the party
// name denormalized; it is ignored on create/update.
type Challan struct {
	Id             int     `db:"id" json:"id,omitempty"`
	Challan_number string  `db:"challan_number" json:"challan_number" validate:"required"`
	Party_id       int     `db:"party_id" json:"party_id" validate:"required"`
	Party_name     string  `db:"party_name" json:"party_name,omitempty"`
	Date           string  `db:"date" json:"date"`
	Amount         float64 `db:"amount" json:"amount"`
	Description    string  `db:"description" json:"description"`
}

type Payment struct {
	Id           int     `db:"id" json:"id,omitempty"`
	Party_id     int     `db:"party_id" json:"party_id" validate:"required"`
	Party_name   string  `db:"party_name" json:"party_name,omitempty"`
	Amount       float64 `db:"amount" json:"amount"`
	Payment_date string  `db:"payment_date" json:"payment_date"`
	Notes        string  `db:"notes" json:"notes"`
}

type Employee struct {
	Id           int    `db:"id" json:"id,omitempty"`
	Name         string `db:"name" json:"name" validate:"required"`
	Contact      string `db:"contact" json:"contact"`
	Role         string `db:"role" json:"role"`
	Joining_date string `db:"joining_date" json:"joining_date"`
}

type Salary struct {
	Id            int     `db:"id" json:"id,omitempty"`
	Employee_id   int     `db:"employee_id" json:"employee_id" validate:"required"`
	Employee_name string  `db:"employee_name" json:"employee_name,omitempty"`
	Month         string  `db:"month" json:"month"`
	Year          int     `db:"year" json:"year"`
	Amount        float64 `db:"amount" json:"amount"`
	Paid_date     string  `db:"paid_date" json:"paid_date"`
	Notes         string  `db:"notes" json:"notes"`
}

type OfficeExpense struct {
	Id          int     `db:"id" json:"id,omitempty"`
	Category    string  `db:"category" json:"category"`
	Description string  `db:"description" json:"description"`
	Amount      float64 `db:"amount" json:"amount"`
	Date        string  `db:"date" json:"date"`
}

// PartyChallan is the composite record returned by search-by-challan.
type PartyChallan struct {
	Name           string  `db:"name" json:"name"`
	Contact        string  `db:"contact" json:"contact"`
	Address        string  `db:"address" json:"address"`
	Gstin          string  `db:"gstin" json:"gstin"`
	Challan_number string  `db:"challan_number" json:"challan_number"`
	Challan_date   string  `db:"challan_date" json:"challan_date"`
	Challan_amount float64 `db:"challan_amount" json:"challan_amount"`
	Description    string  `db:"description" json:"description"`
}

// PartyPayment is one row of the last-month / current-month payment reports.
type PartyPayment struct {
	Party_id      int     `db:"party_id" json:"party_id"`
	Party_name    string  `db:"party_name" json:"party_name"`
	Total_payment float64 `db:"total_payment" json:"total_payment"`
}

// Outstanding is one row of the outstanding report; the backend computes
// the balance, clients display it verbatim.
type Outstanding struct {
	Party_id      int     `db:"party_id" json:"party_id"`
	Party_name    string  `db:"party_name" json:"party_name"`
	Total_challan float64 `db:"total_challan" json:"total_challan"`
	Total_paid    float64 `db:"total_paid" json:"total_paid"`
	Outstanding   float64 `db:"outstanding" json:"outstanding"`
}

type TotalIncoming struct {
	Total_incoming float64 `db:"total_incoming" json:"total_incoming"`
}

// Months are the selector values offered for salary records.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
