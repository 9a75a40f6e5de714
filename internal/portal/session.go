package portal

import "github.com/luhambo/maintenance/internal/common/cnst"

// Session is the signed-in identity and the report whose chat is open.
// The API issues no token; holding a record is what being signed in means.
type Session struct {
	UserType     string
	Student      *Student
	Admin        *Admin
	ChatReportID uint
}

func (s *Session) LoggedIn() bool {
	return s.Student != nil || s.Admin != nil
}

func (s *Session) IsAdmin() bool {
	return s.UserType == cnst.SenderAdmin && s.Admin != nil
}

// UserID is the id sent as senderId on chat messages
func (s *Session) UserID() uint {
	switch {
	case s.IsAdmin():
		return s.Admin.ID
	case s.Student != nil:
		return s.Student.ID
	}
	return 0
}

func (s *Session) FullName() string {
	switch {
	case s.IsAdmin():
		return s.Admin.FullName
	case s.Student != nil:
		return s.Student.FullName
	}
	return ""
}

func (s *Session) signInStudent(st *Student) {
	*s = Session{UserType: cnst.SenderStudent, Student: st}
}

func (s *Session) signInAdmin(a *Admin) {
	*s = Session{UserType: cnst.SenderAdmin, Admin: a}
}

func (s *Session) clear() {
	*s = Session{}
}
