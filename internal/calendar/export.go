package calendar

import (
	"strconv"
	"time"

	"go-event-scheduler/internal/model"

	ical "github.com/arran4/golang-ical"
)

const productID = "-//go-event-scheduler//Event Feed//EN"

// Export 把活動轉成 iCalendar (RFC 5545) 文字
// DTSTART/DTEND 一律以 UTC 輸出，SEQUENCE 等於更新紀錄筆數
func Export(events []*model.Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		ve := cal.AddEvent(e.ID.String())
		ve.SetDtStampTime(stamp.UTC())
		ve.SetCreatedTime(e.CreatedAt.UTC())
		ve.SetModifiedAt(e.UpdatedAt.UTC())
		ve.SetStartAt(e.StartDateTime.UTC())
		ve.SetEndAt(e.EndDateTime.UTC())
		ve.SetSummary(e.EventName)
		if e.EventDetails != "" {
			ve.SetDescription(e.EventDetails)
		}
		ve.SetProperty(ical.ComponentPropertySequence, strconv.Itoa(len(e.UpdateLogs)))
	}

	return cal.Serialize()
}
