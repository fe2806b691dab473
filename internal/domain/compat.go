package domain

import (
	"math"
	"time"
)

// Pesos de los factores de compatibilidad.
const (
	purposeDomainWeight    = 30
	purposeArchetypeWeight = 20
	purposeModalityWeight  = 10
	educationWeight        = 15
	interestsWeight        = 20
	lifestyleFieldWeight   = 5
	ageWeight              = 10
	cityWeight             = 10
	stateWeight            = 5
)

// Edad asumida cuando dob esta ausente.
const defaultAge = 25

// Rango ordinal de cada nivel de educacion. Valores desconocidos quedan en 0.
var educationRank = map[string]int{
	EducationNone:       0,
	EducationPrimary:    1,
	EducationSecondary:  2,
	EducationHighSchool: 3,
	EducationBachelors:  4,
	EducationMasters:    5,
	EducationPhD:        6,
	EducationSelfTaught: 3,
	EducationOther:      2,
}

// CompatibilityScore calcula el score de compatibilidad [0,100] entre dos
// perfiles. Es pura, determinista y simetrica: comparaciones categoricas por
// igualdad exacta sobre la representacion canonica, campos ausentes aportan
// cero. El acumulador factors normaliza el resultado, de modo que un perfil
// identico a si mismo satura en 100 aunque cambien los pesos.
func CompatibilityScore(a, b Profile) int {
	var score, factors float64

	// Proposito: etiquetas nominales, sin credito parcial.
	score += equalityPoints(a.PurposeDomain, b.PurposeDomain, purposeDomainWeight)
	score += equalityPoints(a.PurposeArchetype, b.PurposeArchetype, purposeArchetypeWeight)
	score += equalityPoints(a.PurposeModality, b.PurposeModality, purposeModalityWeight)
	factors += purposeDomainWeight + purposeArchetypeWeight + purposeModalityWeight

	// Educacion: decae 3 puntos por cada paso de distancia ordinal.
	eduDiff := absInt(educationRank[a.Education] - educationRank[b.Education])
	score += math.Max(0, float64(educationWeight-eduDiff*3))
	factors += educationWeight

	// Intereses: solapamiento contra el set mas grande, piso 1 para no dividir
	// por cero.
	common := commonInterests(a.Interests, b.Interests)
	larger := max(len(a.Interests), len(b.Interests), 1)
	score += float64(common) / float64(larger) * interestsWeight
	factors += interestsWeight

	// Estilo de vida: tres chequeos binarios independientes.
	score += equalityPoints(a.Smoke, b.Smoke, lifestyleFieldWeight)
	score += equalityPoints(a.Alcohol, b.Alcohol, lifestyleFieldWeight)
	score += equalityPoints(a.Drugs, b.Drugs, lifestyleFieldWeight)
	factors += 3 * lifestyleFieldWeight

	// Edad: decae medio punto por anio de diferencia.
	ageDiff := absInt(ageOrDefault(a) - ageOrDefault(b))
	score += math.Max(0, ageWeight-float64(ageDiff)/2)
	factors += ageWeight

	// Ubicacion: ciudad domina sobre estado, los niveles no se acumulan.
	if bothSet(a.City, b.City) && a.City == b.City {
		score += cityWeight
	} else if bothSet(a.State, b.State) && a.State == b.State {
		score += stateWeight
	}
	factors += cityWeight

	if factors == 0 {
		return 0
	}
	return int(math.Round(score / factors * 100))
}

// AgeAt deriva la edad como floor((now - dob) / 365.25 dias).
func AgeAt(dob, now time.Time) int {
	days := now.Sub(dob).Hours() / 24
	return int(math.Floor(days / 365.25))
}

func ageOrDefault(p Profile) int {
	if p.DOB == nil {
		return defaultAge
	}
	return AgeAt(*p.DOB, time.Now().UTC())
}

func equalityPoints(a, b string, weight float64) float64 {
	if bothSet(a, b) && a == b {
		return weight
	}
	return 0
}

func bothSet(a, b string) bool {
	return a != "" && b != ""
}

func commonInterests(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, tag := range a {
		set[tag] = struct{}{}
	}
	common := 0
	for _, tag := range b {
		if _, ok := set[tag]; ok {
			common++
		}
	}
	return common
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
