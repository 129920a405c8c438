package statsapi

import "time"

// scheduleResponse is the body of /schedule and of a team's nextGameSchedule.
type scheduleResponse struct {
	TotalItems int            `json:"totalItems"`
	Dates      []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk    int64              `json:"gamePk"`
	GameDate  time.Time          `json:"gameDate"`
	Teams     teamsResponse      `json:"teams"`
	Status    statusResponse     `json:"status"`
	Linescore *linescoreResponse `json:"linescore"`
}

type teamsResponse struct {
	Home teamAtGameResponse `json:"home"`
	Away teamAtGameResponse `json:"away"`
}

type teamAtGameResponse struct {
	Score *int         `json:"score"`
	Team  teamResponse `json:"team"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	StartTimeTBD      bool   `json:"startTimeTBD"`
}

type linescoreResponse struct {
	CurrentPeriod              int                  `json:"currentPeriod"`
	CurrentPeriodOrdinal       string               `json:"currentPeriodOrdinal"`
	CurrentPeriodTimeRemaining string               `json:"currentPeriodTimeRemaining"`
	IntermissionInfo           intermissionResponse `json:"intermissionInfo"`
}

type intermissionResponse struct {
	InIntermission bool `json:"inIntermission"`
	// IntermissionTimeRemaining is in seconds.
	IntermissionTimeRemaining int `json:"intermissionTimeRemaining"`
}

// nextResponse is the body of /teams/{id}?expand=team.schedule.next.
type nextResponse struct {
	Teams []scheduledTeamResponse `json:"teams"`
}

type scheduledTeamResponse struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	NextGameSchedule *scheduleResponse `json:"nextGameSchedule"`
}
