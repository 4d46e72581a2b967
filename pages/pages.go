// Package pages instantiates the generic list-page controller for each of
// the six entity screens, with the defaults and numeric coercion each form
// applies before submitting.
package pages

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mktrading/backoffice/client"
	"github.com/mktrading/backoffice/listpage"
	"github.com/mktrading/backoffice/model"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

// coerceAmount parses a form amount with a zero fallback: blank or garbage
// input becomes 0. Used by the challan and payment forms.
func coerceAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// looseAmount parses without the zero fallback: blank is 0 but garbage
// becomes nil, which goes out as JSON null. The salary and office-expense
// forms ship this known inconsistency; the backend rejects the null.
func looseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		z := 0.0
		return &z
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func firstID(parents []listpage.Choice) int {
	if len(parents) == 0 {
		return 0
	}
	return parents[0].ID
}

func partyChoices(ctx context.Context, api *client.Client) ([]listpage.Choice, error) {
	parties := []model.Party{}
	if err := api.Get(ctx, "/api/parties", &parties); err != nil {
		return nil, err
	}
	choices := make([]listpage.Choice, 0, len(parties))
	for _, p := range parties {
		choices = append(choices, listpage.Choice{ID: p.Id, Label: p.Name})
	}
	return choices, nil
}

func employeeChoices(ctx context.Context, api *client.Client) ([]listpage.Choice, error) {
	emps := []model.Employee{}
	if err := api.Get(ctx, "/api/employees", &emps); err != nil {
		return nil, err
	}
	choices := make([]listpage.Choice, 0, len(emps))
	for _, e := range emps {
		choices = append(choices, listpage.Choice{ID: e.Id, Label: e.Name})
	}
	return choices, nil
}

type PartyDraft struct {
	ID      int
	Name    string
	Contact string
	Address string
	Gstin   string
}

func Parties(api *client.Client) *listpage.Controller[model.Party, PartyDraft] {
	return listpage.New(api, listpage.Config[model.Party, PartyDraft]{
		Path: "/api/parties",
		NewDraft: func([]listpage.Choice) PartyDraft {
			return PartyDraft{}
		},
		EditDraft: func(p model.Party) PartyDraft {
			return PartyDraft{ID: p.Id, Name: p.Name, Contact: p.Contact, Address: p.Address, Gstin: p.Gstin}
		},
		DraftID: func(d PartyDraft) int { return d.ID },
		Payload: func(d PartyDraft) interface{} {
			return model.Party{Id: d.ID, Name: d.Name, Contact: d.Contact, Address: d.Address, Gstin: d.Gstin}
		},
	})
}

type ChallanDraft struct {
	ID            int
	ChallanNumber string
	PartyID       int
	Date          string
	Amount        string
	Description   string
}

func Challans(api *client.Client) *listpage.Controller[model.Challan, ChallanDraft] {
	return listpage.New(api, listpage.Config[model.Challan, ChallanDraft]{
		Path:        "/api/challans",
		LoadParents: partyChoices,
		ParentHint:  "Add at least one party before adding challans.",
		NewDraft: func(parents []listpage.Choice) ChallanDraft {
			return ChallanDraft{PartyID: firstID(parents), Date: today()}
		},
		EditDraft: func(c model.Challan) ChallanDraft {
			return ChallanDraft{
				ID:            c.Id,
				ChallanNumber: c.Challan_number,
				PartyID:       c.Party_id,
				Date:          c.Date,
				Amount:        strconv.FormatFloat(c.Amount, 'f', -1, 64),
				Description:   c.Description,
			}
		},
		DraftID: func(d ChallanDraft) int { return d.ID },
		Payload: func(d ChallanDraft) interface{} {
			return model.Challan{
				Id:             d.ID,
				Challan_number: d.ChallanNumber,
				Party_id:       d.PartyID,
				Date:           d.Date,
				Amount:         coerceAmount(d.Amount),
				Description:    d.Description,
			}
		},
	})
}

type PaymentDraft struct {
	ID          int
	PartyID     int
	Amount      string
	PaymentDate string
	Notes       string
}

func Payments(api *client.Client) *listpage.Controller[model.Payment, PaymentDraft] {
	return listpage.New(api, listpage.Config[model.Payment, PaymentDraft]{
		Path:        "/api/payments",
		LoadParents: partyChoices,
		ParentHint:  "Add at least one party before recording payments.",
		NewDraft: func(parents []listpage.Choice) PaymentDraft {
			return PaymentDraft{PartyID: firstID(parents), PaymentDate: today()}
		},
		EditDraft: func(p model.Payment) PaymentDraft {
			return PaymentDraft{
				ID:          p.Id,
				PartyID:     p.Party_id,
				Amount:      strconv.FormatFloat(p.Amount, 'f', -1, 64),
				PaymentDate: p.Payment_date,
				Notes:       p.Notes,
			}
		},
		DraftID: func(d PaymentDraft) int { return d.ID },
		Payload: func(d PaymentDraft) interface{} {
			return model.Payment{
				Id:           d.ID,
				Party_id:     d.PartyID,
				Amount:       coerceAmount(d.Amount),
				Payment_date: d.PaymentDate,
				Notes:        d.Notes,
			}
		},
	})
}

type EmployeeDraft struct {
	ID          int
	Name        string
	Contact     string
	Role        string
	JoiningDate string
}

func Employees(api *client.Client) *listpage.Controller[model.Employee, EmployeeDraft] {
	return listpage.New(api, listpage.Config[model.Employee, EmployeeDraft]{
		Path: "/api/employees",
		NewDraft: func([]listpage.Choice) EmployeeDraft {
			return EmployeeDraft{}
		},
		EditDraft: func(e model.Employee) EmployeeDraft {
			return EmployeeDraft{ID: e.Id, Name: e.Name, Contact: e.Contact, Role: e.Role, JoiningDate: e.Joining_date}
		},
		DraftID: func(d EmployeeDraft) int { return d.ID },
		Payload: func(d EmployeeDraft) interface{} {
			return model.Employee{Id: d.ID, Name: d.Name, Contact: d.Contact, Role: d.Role, Joining_date: d.JoiningDate}
		},
	})
}

type SalaryDraft struct {
	ID         int
	EmployeeID int
	Month      string
	Year       int
	Amount     string
	PaidDate   string
	Notes      string
}

// salaryPayload carries the loosely parsed amount; nil marshals to null.
type salaryPayload struct {
	Id          int      `json:"id,omitempty"`
	Employee_id int      `json:"employee_id"`
	Month       string   `json:"month"`
	Year        int      `json:"year"`
	Amount      *float64 `json:"amount"`
	Paid_date   string   `json:"paid_date"`
	Notes       string   `json:"notes"`
}

func Salaries(api *client.Client) *listpage.Controller[model.Salary, SalaryDraft] {
	return listpage.New(api, listpage.Config[model.Salary, SalaryDraft]{
		Path:        "/api/salaries",
		LoadParents: employeeChoices,
		ParentHint:  "Add employees first.",
		NewDraft: func(parents []listpage.Choice) SalaryDraft {
			now := time.Now()
			return SalaryDraft{
				EmployeeID: firstID(parents),
				Month:      model.Months[now.Month()-1],
				Year:       now.Year(),
				PaidDate:   today(),
			}
		},
		EditDraft: func(s model.Salary) SalaryDraft {
			return SalaryDraft{
				ID:         s.Id,
				EmployeeID: s.Employee_id,
				Month:      s.Month,
				Year:       s.Year,
				Amount:     strconv.FormatFloat(s.Amount, 'f', -1, 64),
				PaidDate:   s.Paid_date,
				Notes:      s.Notes,
			}
		},
		DraftID: func(d SalaryDraft) int { return d.ID },
		Payload: func(d SalaryDraft) interface{} {
			return salaryPayload{
				Id:          d.ID,
				Employee_id: d.EmployeeID,
				Month:       d.Month,
				Year:        d.Year,
				Amount:      looseAmount(d.Amount),
				Paid_date:   d.PaidDate,
				Notes:       d.Notes,
			}
		},
	})
}

type ExpenseDraft struct {
	ID          int
	Category    string
	Description string
	Amount      string
	Date        string
}

type expensePayload struct {
	Id          int      `json:"id,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
}

func OfficeExpenses(api *client.Client) *listpage.Controller[model.OfficeExpense, ExpenseDraft] {
	return listpage.New(api, listpage.Config[model.OfficeExpense, ExpenseDraft]{
		Path: "/api/office-expenses",
		NewDraft: func([]listpage.Choice) ExpenseDraft {
			return ExpenseDraft{Date: today()}
		},
		EditDraft: func(e model.OfficeExpense) ExpenseDraft {
			return ExpenseDraft{
				ID:          e.Id,
				Category:    e.Category,
				Description: e.Description,
				Amount:      strconv.FormatFloat(e.Amount, 'f', -1, 64),
				Date:        e.Date,
			}
		},
		DraftID: func(d ExpenseDraft) int { return d.ID },
		Payload: func(d ExpenseDraft) interface{} {
			return expensePayload{
				Id:          d.ID,
				Category:    d.Category,
				Description: d.Description,
				Amount:      looseAmount(d.Amount),
				Date:        d.Date,
			}
		},
	})
}
