package advisory

// Capability describes one operation the facade offers to the dialogue
// layer, with the fields it understands. The dialogue layer drives its
// prompting from this contract rather than from knowledge of the engines.
type Capability struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"required_fields,omitempty"`
	OptionalFields []string `json:"optional_fields,omitempty"`
}

// Capabilities returns the facade's capability contract.
func (f *Facade) Capabilities() []Capability {
	return []Capability{
		{
			Name:           "calculate_costs",
			Description:    "Estimate party-and-party costs from structured case attributes, with audit trail and supporting case law.",
			RequiredFields: []string{"case_type"},
			OptionalFields: []string{
				"court_level", "claim_amount", "trial_days", "complexity_level",
				"application_type", "trial_category", "originating_app_type", "appeal_level",
				"contested", "hearing_duration", "settled_before_trial",
				"basis_of_taxation", "litigant_in_person", "non_party", "solicitor_costs",
			},
		},
		{
			Name:           "search_precedents",
			Description:    "Search the costs case-law corpus by free text, ranked by weighted field relevance.",
			RequiredFields: []string{"query"},
			OptionalFields: []string{"max_results"},
		},
		{
			Name:           "lookup_provision",
			Description:    "List the authorities interpreting a rule or statutory provision.",
			RequiredFields: []string{"provision"},
		},
	}
}
