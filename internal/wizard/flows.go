package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"invoicemaker/internal/clients"
	"invoicemaker/pkg/models"
)

const (
	newClientOption  = "+ Add New Client"
	newProjectOption = "+ Add New Project"
)

// SelectOrCreateClient offers every known client plus a create option and
// returns the chosen client ID.
func SelectOrCreateClient(store *clients.Store) (string, error) {
	ids, err := store.IDs()
	if err != nil {
		return "", err
	}
	options := append([]string{newClientOption}, ids...)

	choice, err := Select("Please Select Client (Type to Filter):", options, 10)
	if err != nil {
		return "", err
	}
	if choice == newClientOption {
		return CreateClient(store)
	}
	return choice, nil
}

// CreateClient walks the operator through a new client record.
//
// Naming rule: with a company name, the record keeps name=company and
// attn=person; without one, the record keeps name="Attn: <person>" so the
// rendered document still reads naturally. The client ID slugs the company
// name when present, the person's name otherwise.
func CreateClient(store *clients.Store) (string, error) {
	fmt.Println("\n--- Creating New Client ---")

	company, err := Input("Company Name (Optional, press Enter to skip):", "")
	if err != nil {
		return "", err
	}
	company = strings.TrimSpace(company)

	attnPrompt := "Client Name:"
	if company != "" {
		attnPrompt = "Attn / Contact Person:"
	}
	person, err := Input(attnPrompt, "")
	if err != nil {
		return "", err
	}

	client := &models.Client{}
	rawID := person
	if company != "" {
		client.Name = company
		client.Attn = person
		rawID = company
	} else {
		client.Name = "Attn: " + person
	}

	email, err := Input("Client Email (Optional):", "")
	if err != nil {
		return "", err
	}
	client.Email = strings.TrimSpace(email)

	fmt.Println("\n--- Enter Client Billing Address (Optional) ---")
	billing, err := addressWizard(true)
	if err != nil {
		return "", err
	}
	client.BillingAddress = billing

	id, err := store.Create(rawID, client)
	if err != nil {
		return "", err
	}
	fmt.Printf("Client created successfully: %s\n", id)
	return id, nil
}

// SelectOrCreateProject offers the client's projects plus a create option
// and returns the client record together with the chosen project.
func SelectOrCreateProject(store *clients.Store, clientID string) (*models.Client, models.Project, error) {
	client, err := store.Load(clientID)
	if err != nil {
		return nil, models.Project{}, err
	}

	options := []string{newProjectOption}
	for _, p := range client.Projects {
		name := p.Name
		if name == "" {
			name = "Project"
		}
		options = append(options, name+" | "+p.Address.Street)
	}

	choice, err := Select("Select Project / Job Site:", options, 10)
	if err != nil {
		return nil, models.Project{}, err
	}

	if choice != newProjectOption {
		parts := strings.Split(choice, " | ")
		street := parts[len(parts)-1]
		for _, p := range client.Projects {
			if p.Address.Street == street {
				return client, p, nil
			}
		}
		return nil, models.Project{}, fmt.Errorf("selected project not found: %s", choice)
	}

	fmt.Println("\n--- Adding New Project ---")
	name, err := Input("Project Name (Optional):", "")
	if err != nil {
		return nil, models.Project{}, err
	}

	fmt.Println("--- Enter Project Address ---")
	var address *models.Address
	if client.BillingAddress != nil {
		b := client.BillingAddress
		fmt.Printf("Found Billing Address: %s, %s, %s\n", b.Street, b.City, b.State)
		same, err := Confirm("Use same address as billing?", true)
		if err != nil {
			return nil, models.Project{}, err
		}
		if same {
			address = b
		}
	}
	if address == nil {
		address, err = addressWizard(false)
		if err != nil {
			return nil, models.Project{}, err
		}
	}

	project := models.Project{
		ID:      clients.SlugID(address.Street),
		Name:    strings.TrimSpace(name),
		Address: *address,
	}
	client, err = store.AddProject(clientID, project)
	if err != nil {
		return nil, models.Project{}, err
	}
	fmt.Println("Project added.")
	return client, project, nil
}

// EnterItems collects line items until the operator submits an empty
// description.
func EnterItems() ([]models.InvoiceItem, error) {
	var items []models.InvoiceItem
	fmt.Println("\n--- Enter Invoice Items ---")
	fmt.Println("Tip: Use '\\n' for new lines, and '- ' for bullet points.")
	fmt.Println("(Leave Description empty to finish)")

	for {
		desc, err := Input("Description (leave empty to finish):", "")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(desc) == "" {
			break
		}

		amountStr, err := Input("Amount ($):", "")
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		if err != nil {
			amount = 0
		}

		items = append(items, models.InvoiceItem{
			Description: desc,
			Quantity:    1,
			Rate:        amount,
			Amount:      amount,
		})
	}
	return items, nil
}

// AskTax asks whether tax applies. It returns the tax rate as a fraction
// and, when no tax applies, the status label printed in its place
// ("Exempt" or "Included"); with tax the label is empty and the caller
// shows the computed tax amount instead.
func AskTax() (float64, string, error) {
	applyTax, err := Confirm("Add Tax to Total?", true)
	if err != nil {
		return 0, "", err
	}

	if applyTax {
		rateStr, err := Input("Tax Rate % (e.g. 8.875):", "8.875")
		if err != nil {
			return 0, "", err
		}
		rate, parseErr := strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
		if parseErr != nil {
			rate = 0
		}
		return rate / 100, "", nil
	}

	status, err := Select("Tax Status:", []string{"Exempt", "Included"}, 5)
	if err != nil {
		return 0, "", err
	}
	return 0, status, nil
}

func addressWizard(optional bool) (*models.Address, error) {
	streetPrompt := "Street (Required):"
	if optional {
		streetPrompt = "Street (Leave empty to skip):"
	}
	street, err := Input(streetPrompt, "")
	if err != nil {
		return nil, err
	}
	if optional && strings.TrimSpace(street) == "" {
		return nil, nil
	}

	zip, err := Input("Zip Code:", "")
	if err != nil {
		return nil, err
	}
	city, err := Input("City:", "")
	if err != nil {
		return nil, err
	}
	state, err := Input("State:", "")
	if err != nil {
		return nil, err
	}

	return &models.Address{
		Street: street,
		City:   city,
		State:  state,
		Zip:    zip,
	}, nil
}
