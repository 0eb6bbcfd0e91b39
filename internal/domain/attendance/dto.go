package attendance

import "time"

type AttendanceResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserFullName *string `json:"user_full_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"check_in"`
	CheckOut     *string `json:"check_out,omitempty"`
	IsLate       bool    `json:"is_late"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		UserFullName: a.UserFullName,
		Date:         a.Date,
		CheckIn:      a.CheckIn.Format(time.RFC3339),
		IsLate:       a.IsLate,
	}
	if a.CheckOut != nil {
		checkOut := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}

func ToResponseList(atts []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(atts))
	for _, a := range atts {
		out = append(out, ToResponse(a))
	}
	return out
}
