package domain

// Item is a single record of a browsable collection
type Item interface {
	// ItemID is the stable identity of the record within its collection
	ItemID() string
	// DisplayName is the human readable title shown on tiles and in the modal
	DisplayName() string
	// Payload is the text copied to the clipboard or the image location
	Payload() string
	// SearchFields lists the fields a query is matched against
	SearchFields() []string
}

// Prompt represents a system prompt from the prompts library
type Prompt struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (p Prompt) ItemID() string      { return p.ID }
func (p Prompt) DisplayName() string { return p.Name }
func (p Prompt) Payload() string     { return p.Value }

// SearchFields matches against name, id and the prompt text
func (p Prompt) SearchFields() []string {
	return []string{p.Name, p.ID, p.Value}
}

// Screenshot represents a titled image in the screenshots gallery
type Screenshot struct {
	Name string
	URL  string
}

func (s Screenshot) ItemID() string      { return s.Name }
func (s Screenshot) DisplayName() string { return s.Name }
func (s Screenshot) Payload() string     { return s.URL }

// SearchFields matches the title only
func (s Screenshot) SearchFields() []string {
	return []string{s.Name}
}

// IndexOf returns the position of the item with the given id, or -1
func IndexOf[T Item](items []T, id string) int {
	for i, item := range items {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}
