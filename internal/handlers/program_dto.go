package handlers

import (
	"time"

	"campaign-backend/internal/models"
	"campaign-backend/internal/services"
)

type ProgramRequest struct {
	TitleEn    string `json:"titleEn"`
	TitleNp    string `json:"titleNp"`
	LocationEn string `json:"locationEn"`
	LocationNp string `json:"locationNp"`
	Date       string `json:"date"`
	TimeEn     string `json:"timeEn"`
	TimeNp     string `json:"timeNp"`
	Status     string `json:"status"`
}

type ProgramUpdateRequest struct {
	TitleEn    *string `json:"titleEn"`
	TitleNp    *string `json:"titleNp"`
	LocationEn *string `json:"locationEn"`
	LocationNp *string `json:"locationNp"`
	Date       *string `json:"date"`
	TimeEn     *string `json:"timeEn"`
	TimeNp     *string `json:"timeNp"`
	Status     *string `json:"status"`
}

// parseProgramDate accepts either a bare calendar date or a full RFC 3339
// timestamp, since admin clients have sent both.
func parseProgramDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (r ProgramRequest) toInput() (services.CreateProgramInput, error) {
	input := services.CreateProgramInput{
		TitleEn:    r.TitleEn,
		TitleNp:    r.TitleNp,
		LocationEn: r.LocationEn,
		LocationNp: r.LocationNp,
		TimeEn:     r.TimeEn,
		TimeNp:     r.TimeNp,
		Status:     models.ProgramStatus(r.Status),
	}
	if r.Date != "" {
		date, err := parseProgramDate(r.Date)
		if err != nil {
			return input, err
		}
		input.Date = date
	}
	return input, nil
}

func (r ProgramUpdateRequest) toInput() (services.UpdateProgramInput, error) {
	input := services.UpdateProgramInput{
		TitleEn:    r.TitleEn,
		TitleNp:    r.TitleNp,
		LocationEn: r.LocationEn,
		LocationNp: r.LocationNp,
		TimeEn:     r.TimeEn,
		TimeNp:     r.TimeNp,
	}
	if r.Date != nil {
		date, err := parseProgramDate(*r.Date)
		if err != nil {
			return input, err
		}
		input.Date = &date
	}
	if r.Status != nil {
		status := models.ProgramStatus(*r.Status)
		input.Status = &status
	}
	return input, nil
}
