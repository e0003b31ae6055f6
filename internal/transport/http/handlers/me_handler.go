package handlers

import (
	"errors"
	"net/http"

	"github.com/laksanil/vivaahready/internal/domain/model"
	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	profilesvc "github.com/laksanil/vivaahready/internal/services/profiles"
	"github.com/laksanil/vivaahready/internal/transport/http/dto"
	httperrors "github.com/laksanil/vivaahready/internal/transport/http/errors"
)

type MeHandler struct {
	service *profilesvc.Service
}

func NewMeHandler(service *profilesvc.Service) *MeHandler {
	return &MeHandler{service: service}
}

func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	profile, prefs, err := h.service.GetMe(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, profilesvc.ErrProfileNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "profile does not exist yet")
		case errors.Is(err, profilesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid request")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to load profile")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.MeResponse{
		Profile:     profileToDTO(profile),
		Preferences: preferencesToDTO(prefs),
	})
}

func (h *MeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), identity.UserID, profilesvc.ProfileInput{
		DisplayName:    req.DisplayName,
		Gender:         req.Gender,
		Birthdate:      req.Birthdate,
		Height:         req.Height,
		MaritalStatus:  req.MaritalStatus,
		Community:      req.Community,
		SubCommunity:   req.SubCommunity,
		Gotra:          req.Gotra,
		Diet:           req.Diet,
		Smoking:        req.Smoking,
		Drinking:       req.Drinking,
		Citizenship:    req.Citizenship,
		GrewUpIn:       req.GrewUpIn,
		Location:       req.Location,
		Education:      req.Education,
		Income:         req.Income,
		Occupation:     req.Occupation,
		FamilyValues:   req.FamilyValues,
		FamilyLocation: req.FamilyLocation,
		MotherTongue:   req.MotherTongue,
		Pets:           req.Pets,
		Religion:       req.Religion,
	})
	if err != nil {
		switch {
		case errors.Is(err, profilesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "profile validation failed")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to save profile")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, profileToDTO(profile))
}

func (h *MeHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.PreferencesUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), identity.UserID, profilesvc.PreferencesInput{
		AgeMin:       req.AgeMin,
		AgeMax:       req.AgeMax,
		AgeStrict:    req.AgeStrict,
		HeightMin:    req.HeightMin,
		HeightMax:    req.HeightMax,
		HeightStrict: req.HeightStrict,

		Location:       req.Location,
		LocationStrict: req.LocationStrict,

		MaritalStatus:  criterionInput(req.MaritalStatus),
		Community:      criterionInput(req.Community),
		SubCommunity:   criterionInput(req.SubCommunity),
		Gotra:          criterionInput(req.Gotra),
		Diet:           criterionInput(req.Diet),
		Smoking:        criterionInput(req.Smoking),
		Drinking:       criterionInput(req.Drinking),
		Citizenship:    criterionInput(req.Citizenship),
		GrewUpIn:       criterionInput(req.GrewUpIn),
		Relocation:     criterionInput(req.Relocation),
		Education:      criterionInput(req.Education),
		Income:         criterionInput(req.Income),
		Occupation:     criterionInput(req.Occupation),
		FamilyValues:   criterionInput(req.FamilyValues),
		FamilyLocation: criterionInput(req.FamilyLocation),
		MotherTongue:   criterionInput(req.MotherTongue),
		Pets:           criterionInput(req.Pets),
		Religion:       criterionInput(req.Religion),
	})
	if err != nil {
		switch {
		case errors.Is(err, profilesvc.ErrProfileNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "create a profile before setting preferences")
		case errors.Is(err, profilesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "preferences validation failed")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to save preferences")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, preferencesToDTO(prefs))
}

func criterionInput(req dto.CriterionRequest) profilesvc.CriterionInput {
	return profilesvc.CriterionInput{Values: req.Values, Strict: req.Strict}
}

func profileToDTO(p model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:           p.UserID,
		DisplayName:      p.DisplayName,
		Gender:           string(p.Gender),
		Birthdate:        p.Birthdate,
		Height:           p.Height,
		MaritalStatus:    string(p.MaritalStatus),
		Community:        p.Community,
		SubCommunity:     p.SubCommunity,
		Gotra:            p.Gotra,
		Diet:             string(p.Diet),
		Smoking:          string(p.Smoking),
		Drinking:         string(p.Drinking),
		Citizenship:      p.Citizenship,
		GrewUpIn:         p.GrewUpIn,
		Location:         p.Location,
		Education:        p.Education,
		Income:           p.Income,
		Occupation:       p.Occupation,
		FamilyValues:     p.FamilyValues,
		FamilyLocation:   p.FamilyLocation,
		MotherTongue:     p.MotherTongue,
		Pets:             p.Pets,
		Religion:         p.Religion,
		ModerationStatus: string(p.ModerationStatus),
	}
}

func preferencesToDTO(prefs model.Preferences) dto.PreferencesResponse {
	return dto.PreferencesResponse{
		AgeMin:       prefs.AgeMin,
		AgeMax:       prefs.AgeMax,
		AgeStrict:    prefs.AgeStrict,
		HeightMinIn:  prefs.HeightMinIn,
		HeightMaxIn:  prefs.HeightMaxIn,
		HeightStrict: prefs.HeightStrict,

		Location:       prefs.Location,
		LocationStrict: prefs.LocationStrict,

		MaritalStatus:  criterionToDTO(prefs.MaritalStatus),
		Community:      criterionToDTO(prefs.Community),
		SubCommunity:   criterionToDTO(prefs.SubCommunity),
		Gotra:          criterionToDTO(prefs.Gotra),
		Diet:           criterionToDTO(prefs.Diet),
		Smoking:        criterionToDTO(prefs.Smoking),
		Drinking:       criterionToDTO(prefs.Drinking),
		Citizenship:    criterionToDTO(prefs.Citizenship),
		GrewUpIn:       criterionToDTO(prefs.GrewUpIn),
		Relocation:     criterionToDTO(prefs.Relocation),
		Education:      criterionToDTO(prefs.Education),
		Income:         criterionToDTO(prefs.Income),
		Occupation:     criterionToDTO(prefs.Occupation),
		FamilyValues:   criterionToDTO(prefs.FamilyValues),
		FamilyLocation: criterionToDTO(prefs.FamilyLocation),
		MotherTongue:   criterionToDTO(prefs.MotherTongue),
		Pets:           criterionToDTO(prefs.Pets),
		Religion:       criterionToDTO(prefs.Religion),
	}
}

func criterionToDTO(c model.Criterion) dto.CriterionResponse {
	values := c.Values
	if values == nil {
		values = []string{}
	}
	return dto.CriterionResponse{Values: values, Strict: c.Strict}
}
