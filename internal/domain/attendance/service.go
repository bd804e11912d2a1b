package attendance

import "context"

type Service interface {
	Mark(ctx context.Context, companyID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, companyID string, req ListAttendanceRequest) ([]AttendanceResponse, error)
}
