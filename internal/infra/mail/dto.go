package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

type ReminderEmailData struct {
	ContactName     string
	CompanyName     string
	NextContactDate string
}
