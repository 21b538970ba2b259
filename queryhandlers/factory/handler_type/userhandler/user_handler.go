package userhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "4"
	handlerType = "user-handler"
)

// UserHandler computes stats about bikeshare users
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (uh *UserHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (uh *UserHandler) GetQueryID() string {
	return queryID
}

func (uh *UserHandler) GetType() string {
	return handlerType
}

// GenerateResponse stores in response the user stats of set
func (uh *UserHandler) GenerateResponse(set *trip.FilteredSet, response *queryresponse.QueryResponse) error {
	if set.IsEmpty() {
		log.Debug(uh.getLogMessage("GenerateResponse", "nothing to compute", handlerErrors.ErrEmptySet))
		return handlerErrors.ErrEmptySet
	}

	stats := GetUserStats(set)
	response.Users = &stats

	if !stats.Genders.Available {
		log.Info(uh.getLogMessage("GenerateResponse", fmt.Sprintf("gender data not available for %s", set.City()), nil))
	}
	if !stats.BirthYears.Available {
		log.Info(uh.getLogMessage("GenerateResponse", fmt.Sprintf("birth year data not available for %s", set.City()), nil))
	}
	return nil
}

// GetUserStats returns the amount of rides per user type (blank ones are not counted) and, when the dataset has them, per gender and the
// birth year stats. Riders that didn't report gender or birth year are left out of those stats; if none of the
// rides of set has the data the stat is reported as not available. Set must not be empty.
func GetUserStats(set *trip.FilteredSet) queryresponse.UserStats {
	schema := set.Schema()
	userTypes := frequencycounter.NewFrequencyCounter[string]()
	genders := frequencycounter.NewFrequencyCounter[string]()
	birthYears := frequencycounter.NewFrequencyCounter[int]()

	set.Each(func(record trip.TripData) {
		if record.UserType != "" {
			userTypes.UpdateCounter(record.UserType)
		}
		if schema.HasGender && record.HasGender() {
			genders.UpdateCounter(record.Gender)
		}
		if schema.HasBirthYear && record.HasBirthYear() {
			birthYears.UpdateCounter(record.BirthYear)
		}
	})

	stats := queryresponse.UserStats{
		UserTypes: toValueCounts(userTypes.ByCount()),
	}

	if genders.Total() > 0 {
		stats.Genders = queryresponse.GenderStats{
			Available: true,
			Counts:    toValueCounts(genders.ByCount()),
		}
	}

	if birthYears.Total() > 0 {
		mostCommon := birthYears.Mode()
		stats.BirthYears = queryresponse.BirthYearStats{
			Available:  true,
			Earliest:   birthYears.Min(),
			MostRecent: birthYears.Max(),
			MostCommon: queryresponse.IntCount{Value: mostCommon.Value, Count: mostCommon.Count},
		}
	}

	return stats
}

func toValueCounts(entries []frequencycounter.Entry[string]) []queryresponse.ValueCount {
	counts := make([]queryresponse.ValueCount, 0, len(entries))
	for _, entry := range entries {
		counts = append(counts, queryresponse.ValueCount{Value: entry.Value, Count: entry.Count})
	}
	return counts
}
