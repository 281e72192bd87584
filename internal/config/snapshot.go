package config

import (
	"encoding/json"
	"fmt"

	"github.com/thaitax/pit-estimator/internal/domain"
)

// Snapshot is the persistence form of a wizard session: the profile form
// data plus the step the taxpayer was on. The profile is a tagged union
// keyed on the employmentType discriminant; every engine result must be
// recomputable from a decoded snapshot alone.
type Snapshot struct {
	Profile     domain.Profile
	CurrentStep int
}

// snapshotHeader carries the discriminant fields read before the variant is
// known.
type snapshotHeader struct {
	EmploymentType domain.ProfileKind `json:"employmentType"`
	CurrentStep    int                `json:"currentStep"`
}

// DecodeSnapshot deserializes a snapshot blob into the profile variant named
// by its discriminant. A missing or unknown discriminant is rejected; that
// is the one hard failure this boundary owns. Malformed numeric fields
// inside a known variant normalize to zero values instead of failing.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var header snapshotHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	var (
		profile domain.Profile
		err     error
	)
	switch header.EmploymentType {
	case domain.KindSalaried:
		var v domain.SalariedProfile
		err = json.Unmarshal(data, &v)
		profile = v
	case domain.KindFreelancer:
		var v domain.FreelancerProfile
		err = json.Unmarshal(data, &v)
		profile = v
	case domain.KindSoleProprietor:
		var v domain.SoleProprietorProfile
		err = json.Unmarshal(data, &v)
		profile = v
	case domain.KindCompanyOwner:
		var v domain.CompanyOwnerProfile
		err = json.Unmarshal(data, &v)
		profile = v
	case "":
		return Snapshot{}, fmt.Errorf("snapshot is missing the employmentType discriminant")
	default:
		return Snapshot{}, fmt.Errorf("unknown employmentType %q", header.EmploymentType)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode %s profile: %w", header.EmploymentType, err)
	}

	return Snapshot{Profile: profile, CurrentStep: header.CurrentStep}, nil
}

// EncodeSnapshot serializes a snapshot back to the persistence form with the
// discriminant embedded, so decode(encode(s)) round-trips.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	if s.Profile == nil {
		return nil, fmt.Errorf("snapshot has no profile")
	}

	body, err := json.Marshal(s.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s profile: %w", s.Profile.Kind(), err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("failed to flatten profile: %w", err)
	}
	kind, _ := json.Marshal(s.Profile.Kind())
	step, _ := json.Marshal(s.CurrentStep)
	fields["employmentType"] = kind
	fields["currentStep"] = step

	return json.Marshal(fields)
}
