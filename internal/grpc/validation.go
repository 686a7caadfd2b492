package grpc

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/supportqa/ticket-metrics/api/v1"
)

// Accepted request date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, status.Errorf(codes.InvalidArgument, "%s: invalid date %q, want ISO-8601", field, value)
}

func parsePeriod(req *pb.TimePeriodRequest) (start, end time.Time, err error) {
	start, err = parseDate("start_date", req.GetStartDate())
	if err != nil {
		return
	}
	end, err = parseDate("end_date", req.GetEndDate())
	if err != nil {
		return
	}
	if end.Before(start) {
		err = status.Error(codes.InvalidArgument, "end_date must not be before start_date")
	}
	return
}

// parseWindow parses one named start/end pair of a comparison request.
func parseWindow(name, startValue, endValue string) (start, end time.Time, err error) {
	start, err = parseDate(fmt.Sprintf("%s_start", name), startValue)
	if err != nil {
		return
	}
	end, err = parseDate(fmt.Sprintf("%s_end", name), endValue)
	if err != nil {
		return
	}
	if end.Before(start) {
		err = status.Errorf(codes.InvalidArgument, "%s_end must not be before %s_start", name, name)
	}
	return
}

func validateTicketID(id int64) error {
	if id <= 0 {
		return status.Error(codes.InvalidArgument, "ticket_id must be positive")
	}
	return nil
}
