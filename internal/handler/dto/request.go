package dto

// CreateSlotRequest accepts two shapes: explicit debut/fin instants, or a
// local date plus start/end wall-clock times.
type CreateSlotRequest struct {
	Debut      string `json:"debut"`
	Fin        string `json:"fin"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Disponible *bool  `json:"disponible"`
}

type SlotRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BulkCreateSlotsRequest struct {
	Date            string      `json:"date"`
	Ranges          []SlotRange `json:"ranges"`
	IntervalMinutes int         `json:"intervalMinutes"`
}

type UpdateSlotRequest struct {
	Debut      *string `json:"debut"`
	Fin        *string `json:"fin"`
	Disponible *bool   `json:"disponible"`
}

// CreateBookingRequest keeps both historical spellings of the slot id field.
type CreateBookingRequest struct {
	CreneauID    string `json:"creneauId"`
	SlotID       string `json:"slotId"`
	ClientPrenom string `json:"clientPrenom"`
	ClientNom    string `json:"clientNom"`
	ClientEmail  string `json:"clientEmail"`
}
