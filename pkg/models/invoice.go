package models

// Address is a postal address attached to clients and projects.
type Address struct {
	Street string `yaml:"street"`
	City   string `yaml:"city"`
	State  string `yaml:"state"`
	Zip    string `yaml:"zip"`
}

// Project is a job site belonging to a client. The ID is a slug derived
// from the street address and becomes part of invoice filenames.
type Project struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name,omitempty"`
	Address Address `yaml:"address"`
}

// Client is one keyed client record, stored as data/clients/<id>/info.yaml.
//
// Naming rule: when the client is a company, Name holds the company name and
// Attn the contact person. When the client is an individual, Name holds
// "Attn: <person>" and Attn is empty. Downstream extraction strips the
// "Attn:" label when reporting client names.
type Client struct {
	Name           string    `yaml:"name"`
	Attn           string    `yaml:"attn,omitempty"`
	Email          string    `yaml:"email,omitempty"`
	BillingAddress *Address  `yaml:"billing_address,omitempty"`
	Projects       []Project `yaml:"projects"`
}

// InvoiceItem is a single billable line item.
type InvoiceItem struct {
	Description string
	Quantity    float64
	Rate        float64
	Amount      float64
}

// Sender is the issuing party printed on every invoice, loaded from
// <root>/sender.yaml.
type Sender struct {
	Name     string `yaml:"name"`
	Address1 string `yaml:"address1"`
	Address2 string `yaml:"address2"`
	License  string `yaml:"license"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	BankInfo string `yaml:"bank_info"`
}

// InvoiceContext is everything the invoice template needs to render one
// document. The rendered text embeds these fields using the key:value
// conventions the ledger's field extractor depends on.
type InvoiceContext struct {
	ID         string // e.g. HI20250301-01
	Date       string // issue date as printed on the document (MM/DD/YYYY)
	Sender     Sender
	Client     Client
	Project    Project
	Items      []InvoiceItem
	Total      float64 // grand total including tax
	TaxRate    float64 // fraction, 0 when no tax applied
	TaxDisplay string  // "$12.34", "Exempt" or "Included"
	IsPaid     bool
	IsVoid     bool
}
