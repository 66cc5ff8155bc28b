package persistence

import (
	"time"

	"krvt/internal/domain/entity"
	"krvt/internal/domain/service"
	"krvt/internal/infra/simulate"
)

// Built-in seed data, used whenever a snapshot is absent or unreadable. It
// mirrors the content the community project has always started with.

func defaultHotspots() []*entity.Hotspot {
	return []*entity.Hotspot{
		{ID: "Cau1", Name: "Cầu số 1", PollutionLevel: 42, Note: "Rác nổi sau mưa"},
		{ID: "Cau2", Name: "Cầu số 2", PollutionLevel: 73, Note: "Mùi hôi, nước đục"},
		{ID: "Cong3", Name: "Cống số 3", PollutionLevel: 15, Note: "Ổn định"},
	}
}

func defaultEvents(idGen service.IDGenerator, now time.Time) []*entity.Event {
	date := simulate.NextSunday(now)

	return []*entity.Event{
		{
			ID:                  idGen.NewID(),
			Name:                "Chủ nhật xanh " + formatDayMonth(date),
			Date:                date,
			Description:         "Nhặt rác hai bờ kênh, phân loại tại chỗ",
			PointsPerAttendance: 20,
			Attendees:           []string{},
		},
	}
}

func defaultParticipants() []*entity.Participant {
	return []*entity.Participant{
		{ID: "sv01", Name: "Nguyễn Minh Anh", Points: 40},
		{ID: "sv02", Name: "Trần Bảo", Points: 15},
	}
}

func defaultRewards() []*entity.Reward {
	return []*entity.Reward{
		{ID: "rw01", Name: "Bình nước tái sử dụng", Cost: 50},
		{ID: "rw02", Name: "Áo thun tình nguyện", Cost: 120},
		{ID: "rw03", Name: "Móc khóa xanh", Cost: 20},
	}
}

// formatDayMonth turns an ISO date into the "dd/mm" form used in event names.
func formatDayMonth(isoDate string) string {
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}

	return parsed.Format("02/01")
}
