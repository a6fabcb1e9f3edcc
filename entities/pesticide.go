package entities

// PesticideEntry is one row of the static pesticide reference table,
// returned verbatim for a matching crop.
type PesticideEntry struct {
	Crop        string `json:"crop"`
	Pesticide   string `json:"pesticide"`
	Dosage      string `json:"dosage"`
	Application string `json:"application"`
}
