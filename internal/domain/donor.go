package domain

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Donor is the identity entity. A donor is unique by mobile number, and by
// national ID when one is present (sparse: the empty string never conflicts).
type Donor struct {
	ID           int32  `json:"id"`
	MobileNumber string `json:"mobile_number"`
	NationalID   string `json:"national_id,omitempty"`
	Name         string `json:"name"`
	FatherName   string `json:"father_name"`
	Gender       Gender `json:"gender"`
	Age          int32  `json:"age"`
	BloodGroup   string `json:"blood_group"`
	Address      string `json:"address"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}

// DonorIdentifier carries the lookup keys accepted by the registry.
// Either field may be empty; at least one must be set to resolve.
type DonorIdentifier struct {
	Mobile     string
	NationalID string
}

// DonorAttributes are the demographic fields supplied alongside an
// identifier. On an existing donor only Age (always) and NationalID
// (when non-empty) are applied; the rest only seed a new record.
type DonorAttributes struct {
	Name       string
	FatherName string
	Gender     Gender
	Age        int32
	BloodGroup string
	Address    string
}
