package domain

import "errors"

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate record")
)

// ProficiencyLevel is the self-assessed level attached to a skill.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyNovice       ProficiencyLevel = "Novice"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "Advanced"
	ProficiencyExpert       ProficiencyLevel = "Expert"
)

// Status is shared by projects and goals.
// Wire values keep their spaces for frontend compatibility.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type TimeLine string

const (
	TimeLineShortTerm TimeLine = "Short-Term"
	TimeLineMedTerm   TimeLine = "Med-Term"
	TimeLineLongTerm  TimeLine = "Long-Term"
)
