package clients

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"invoicemaker/pkg/models"
)

// defaultSender is materialized on first run so operators have a file to
// fill in rather than a format to guess.
const defaultSender = `name: Your Company Name
address1: 123 Main Street
address2: City, ST 00000
license: "License #000000"
email: you@example.com
phone: (555) 555-0100
bank_info: "Bank Name / Routing 000000000 / Account 0000000000"
`

// LoadSender reads the sender profile at path, writing the default profile
// there first if none exists yet.
func LoadSender(path string) (*models.Sender, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := os.WriteFile(path, []byte(defaultSender), 0644); writeErr != nil {
			return nil, fmt.Errorf("failed to write default sender profile: %w", writeErr)
		}
		content = []byte(defaultSender)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read sender profile: %w", err)
	}

	var sender models.Sender
	if err := yaml.Unmarshal(content, &sender); err != nil {
		return nil, fmt.Errorf("failed to parse sender profile: %w", err)
	}
	return &sender, nil
}
