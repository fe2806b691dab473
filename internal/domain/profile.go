package domain

import "time"

// Niveles de educacion en representacion canonica.
const (
	EducationNone       = "NONE"
	EducationPrimary    = "PRIMARY"
	EducationSecondary  = "SECONDARY"
	EducationHighSchool = "HIGH_SCHOOL"
	EducationBachelors  = "BACHELORS"
	EducationMasters    = "MASTERS"
	EducationPhD        = "PHD"
	EducationSelfTaught = "SELF_TAUGHT"
	EducationOther      = "OTHER"
)

// Profile es el registro de atributos de un usuario. Lo muta el flujo de
// CRUD de perfiles; el nucleo de scoring/retrieval lo trata como lectura,
// salvo los sets admired_users/admired_by que mantiene el flujo admire/pass.
type Profile struct {
	UserID           string     `json:"user_id"`
	Gender           string     `json:"gender,omitempty"`
	DOB              *time.Time `json:"dob,omitempty"`
	City             string     `json:"city,omitempty"`
	State            string     `json:"state,omitempty"`
	Country          string     `json:"country,omitempty"`
	Education        string     `json:"education,omitempty"`
	Profession       string     `json:"profession,omitempty"`
	Religion         string     `json:"religion,omitempty"`
	PurposeDomain    string     `json:"purpose_domain,omitempty"`
	PurposeArchetype string     `json:"purpose_archetype,omitempty"`
	PurposeModality  string     `json:"purpose_modality,omitempty"`
	Interests        []string   `json:"interests,omitempty"`
	Smoke            string     `json:"smoke,omitempty"`
	Alcohol          string     `json:"alcohol,omitempty"`
	Drugs            string     `json:"drugs,omitempty"`
	AdmiredUsers     []string   `json:"-"`
	AdmiredBy        []string   `json:"-"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Age deriva la edad a partir de dob. ok=false cuando dob esta ausente.
func (p Profile) Age(now time.Time) (int, bool) {
	if p.DOB == nil {
		return 0, false
	}
	return AgeAt(*p.DOB, now), true
}

// HasAdmired indica si el perfil ya admiro a userID.
func (p Profile) HasAdmired(userID string) bool {
	for _, id := range p.AdmiredUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// Candidate es la proyeccion publica de un perfil durante el discovery,
// con la edad derivada y, opcionalmente, el score de compatibilidad
// calculado contra el solicitante. Nunca se persiste.
type Candidate struct {
	UserID             string     `json:"userId"`
	Gender             string     `json:"gender,omitempty"`
	DOB                *time.Time `json:"dob,omitempty"`
	Age                *int       `json:"age"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	Country            string     `json:"country,omitempty"`
	Education          string     `json:"education,omitempty"`
	Profession         string     `json:"profession,omitempty"`
	Religion           string     `json:"religion,omitempty"`
	PurposeDomain      string     `json:"purposeDomain,omitempty"`
	PurposeArchetype   string     `json:"purposeArchetype,omitempty"`
	PurposeModality    string     `json:"purposeModality,omitempty"`
	Interests          []string   `json:"interests,omitempty"`
	Smoke              string     `json:"smoke,omitempty"`
	Alcohol            string     `json:"alcohol,omitempty"`
	Drugs              string     `json:"drugs,omitempty"`
	CompatibilityScore *int       `json:"compatibilityScore,omitempty"`
}

// NewCandidate construye la proyeccion de un perfil. La edad queda en nil
// cuando dob esta ausente.
func NewCandidate(p Profile, now time.Time) Candidate {
	c := Candidate{
		UserID:           p.UserID,
		Gender:           p.Gender,
		DOB:              p.DOB,
		City:             p.City,
		State:            p.State,
		Country:          p.Country,
		Education:        p.Education,
		Profession:       p.Profession,
		Religion:         p.Religion,
		PurposeDomain:    p.PurposeDomain,
		PurposeArchetype: p.PurposeArchetype,
		PurposeModality:  p.PurposeModality,
		Interests:        p.Interests,
		Smoke:            p.Smoke,
		Alcohol:          p.Alcohol,
		Drugs:            p.Drugs,
	}
	if age, ok := p.Age(now); ok {
		c.Age = &age
	}
	return c
}
