package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/domain/entity"
)

// In-memory fakes backing the usecase tests. They implement the same error
// contracts as the MongoDB repositories, duplicate-key conflicts included.

type fakeLogger struct{}

func (fakeLogger) Debugf(string, ...interface{}) {}
func (fakeLogger) Infof(string, ...interface{})  {}
func (fakeLogger) Warnf(string, ...interface{})  {}
func (fakeLogger) Errorf(string, ...interface{}) {}
func (fakeLogger) Fatalf(string, ...interface{}) {}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakeHasher) HashToken(token string) (string, error) {
	return "tokenhash:" + token, nil
}

func (fakeHasher) CompareTokenHash(token, hashedToken string) error {
	if hashedToken != "tokenhash:"+token {
		return errors.New("token mismatch")
	}
	return nil
}

type fakeIDGen struct{}

func (fakeIDGen) NewID() string { return uuid.New().String() }

type fakeRandom struct{ token string }

func (f fakeRandom) GenerateRandomToken(int) (string, error) { return f.token, nil }

type fakeTokenService struct{}

func (fakeTokenService) GenerateSessionToken(userID string) (string, error) {
	return "session-" + userID, nil
}

func (fakeTokenService) VerifySessionToken(token string) (string, error) {
	if !strings.HasPrefix(token, "session-") {
		return "", apperr.ErrInvalidToken
	}
	return strings.TrimPrefix(token, "session-"), nil
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

func (fakeValidator) ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password too short")
	}
	return nil
}

type fakeConfig struct{ production bool }

func (f fakeConfig) IsProduction() bool                        { return f.production }
func (fakeConfig) GetAppBaseURL() string                       { return "http://localhost:8080" }
func (fakeConfig) GetFrontendBaseURL() string                  { return "http://localhost:5173" }
func (fakeConfig) GetCORSOrigins() []string                    { return nil }
func (fakeConfig) GetPasswordResetTokenExpiry() time.Duration  { return 15 * time.Minute }

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMail struct{ sent []sentMail }

func (f *fakeMail) SendEmail(_ context.Context, to, subject, body string) error {
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type fakeMedia struct {
	uploads         int
	destroyed       []string
	destroyedVideos []string
	failUpload      bool
}

func (f *fakeMedia) Upload(context.Context, string) (*contract.UploadResult, error) {
	if f.failUpload {
		return nil, apperr.ErrUpload
	}
	f.uploads++
	return &contract.UploadResult{
		URL:      fmt.Sprintf("https://cdn.example.com/assets/asset-%d.jpg", f.uploads),
		PublicID: fmt.Sprintf("asset-%d", f.uploads),
	}, nil
}

func (f *fakeMedia) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func (f *fakeMedia) DestroyVideo(_ context.Context, publicID string) error {
	f.destroyedVideos = append(f.destroyedVideos, publicID)
	return nil
}

func (f *fakeMedia) PublicIDFromURL(rawURL string) string {
	base := rawURL[strings.LastIndex(rawURL, "/")+1:]
	if dot := strings.LastIndex(base, "."); dot >= 0 {
		base = base[:dot]
	}
	return base
}

type fakeGateway struct {
	sessions     int
	lastInput    *contract.CheckoutInput
	failCreate   bool
	badSignature bool
	event        *contract.PaymentEvent
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, in *contract.CheckoutInput) (*contract.CheckoutSession, error) {
	if f.failCreate {
		return nil, apperr.ErrGateway
	}
	f.sessions++
	f.lastInput = in
	return &contract.CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%d", f.sessions),
		URL: fmt.Sprintf("https://pay.example.com/cs_test_%d", f.sessions),
	}, nil
}

func (f *fakeGateway) ParseWebhookEvent(payload []byte, signature string) (*contract.PaymentEvent, error) {
	if f.badSignature {
		return nil, apperr.ErrSignature
	}
	return f.event, nil
}

type fakeUserRepo struct{ users map[string]*entity.User }

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperr.ErrConflict
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, apperr.ErrNotFound
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(_ context.Context, id, hashedPassword string) error {
	user, ok := r.users[id]
	if !ok {
		return apperr.ErrNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (r *fakeUserRepo) AddEnrolledCourse(_ context.Context, userID, courseID string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	for _, id := range user.EnrolledCourses {
		if id == courseID {
			return nil
		}
	}
	user.EnrolledCourses = append(user.EnrolledCourses, courseID)
	return nil
}

type fakeCourseRepo struct{ courses map[string]*entity.Course }

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*entity.Course{}}
}

func (r *fakeCourseRepo) CreateCourse(_ context.Context, course *entity.Course) error {
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(_ context.Context, id string) (*entity.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return course, nil
}

func (r *fakeCourseRepo) GetCoursesByCreator(_ context.Context, creatorID string) ([]*entity.Course, error) {
	result := []*entity.Course{}
	for _, c := range r.courses {
		if c.Creator == creatorID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCourseRepo) GetPublishedCourses(_ context.Context) ([]*entity.Course, error) {
	result := []*entity.Course{}
	for _, c := range r.courses {
		if c.IsPublished {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCourseRepo) SearchCourses(_ context.Context, opts *contract.CourseSearchOptions) ([]*entity.Course, error) {
	result := []*entity.Course{}
	for _, c := range r.courses {
		if !c.IsPublished {
			continue
		}
		if opts.Query != "" {
			title := strings.ToLower(c.CourseTitle)
			sub := ""
			if c.SubTitle != nil {
				sub = strings.ToLower(*c.SubTitle)
			}
			q := strings.ToLower(opts.Query)
			if !strings.Contains(title, q) && !strings.Contains(sub, q) {
				continue
			}
		}
		if len(opts.Categories) > 0 {
			matched := false
			for _, cat := range opts.Categories {
				if strings.EqualFold(cat, c.Category) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, c)
	}
	switch opts.SortByPrice {
	case "lowTohigh":
		sort.Slice(result, func(i, j int) bool { return result[i].Price() < result[j].Price() })
	case "highTolow":
		sort.Slice(result, func(i, j int) bool { return result[i].Price() > result[j].Price() })
	}
	return result, nil
}

func (r *fakeCourseRepo) UpdateCourse(_ context.Context, id string, updates map[string]interface{}) (*entity.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "course_title":
			course.CourseTitle = value.(string)
		case "sub_title":
			v := value.(string)
			course.SubTitle = &v
		case "description":
			v := value.(string)
			course.Description = &v
		case "category":
			course.Category = value.(string)
		case "course_level":
			v := entity.CourseLevel(value.(string))
			course.CourseLevel = &v
		case "course_price":
			v := value.(float64)
			course.CoursePrice = &v
		case "course_thumbnail":
			v := value.(string)
			course.CourseThumbnail = &v
		case "is_published":
			course.IsPublished = value.(bool)
		case "updated_at":
			course.UpdatedAt = value.(time.Time)
		}
	}
	return course, nil
}

func (r *fakeCourseRepo) AppendLecture(_ context.Context, courseID, lectureID string) error {
	course, ok := r.courses[courseID]
	if !ok {
		return apperr.ErrNotFound
	}
	course.Lectures = append(course.Lectures, lectureID)
	return nil
}

func (r *fakeCourseRepo) LinkLecture(_ context.Context, courseID, lectureID string) error {
	course, ok := r.courses[courseID]
	if !ok {
		return apperr.ErrNotFound
	}
	for _, id := range course.Lectures {
		if id == lectureID {
			return nil
		}
	}
	course.Lectures = append(course.Lectures, lectureID)
	return nil
}

func (r *fakeCourseRepo) PullLectureRef(_ context.Context, lectureID string) error {
	for _, course := range r.courses {
		kept := course.Lectures[:0]
		for _, id := range course.Lectures {
			if id != lectureID {
				kept = append(kept, id)
			}
		}
		course.Lectures = kept
	}
	return nil
}

func (r *fakeCourseRepo) AddEnrolledStudent(_ context.Context, courseID, userID string) error {
	course, ok := r.courses[courseID]
	if !ok {
		return apperr.ErrNotFound
	}
	for _, id := range course.EnrolledStudents {
		if id == userID {
			return nil
		}
	}
	course.EnrolledStudents = append(course.EnrolledStudents, userID)
	return nil
}

type fakeLectureRepo struct{ lectures map[string]*entity.Lecture }

func newFakeLectureRepo() *fakeLectureRepo {
	return &fakeLectureRepo{lectures: map[string]*entity.Lecture{}}
}

func (r *fakeLectureRepo) CreateLecture(_ context.Context, lecture *entity.Lecture) error {
	r.lectures[lecture.ID] = lecture
	return nil
}

func (r *fakeLectureRepo) GetLectureByID(_ context.Context, id string) (*entity.Lecture, error) {
	lecture, ok := r.lectures[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return lecture, nil
}

func (r *fakeLectureRepo) GetLecturesByIDs(_ context.Context, ids []string) ([]*entity.Lecture, error) {
	result := []*entity.Lecture{}
	for _, id := range ids {
		if lecture, ok := r.lectures[id]; ok {
			result = append(result, lecture)
		}
	}
	return result, nil
}

func (r *fakeLectureRepo) UpdateLecture(_ context.Context, id string, updates map[string]interface{}) error {
	lecture, ok := r.lectures[id]
	if !ok {
		return apperr.ErrNotFound
	}
	for key, value := range updates {
		switch key {
		case "lecture_title":
			lecture.LectureTitle = value.(string)
		case "video_url":
			lecture.VideoURL = value.(string)
		case "public_id":
			lecture.PublicID = value.(string)
		case "is_preview_free":
			lecture.IsPreviewFree = value.(bool)
		case "updated_at":
			lecture.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeLectureRepo) DeleteLecture(_ context.Context, id string) (*entity.Lecture, error) {
	lecture, ok := r.lectures[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	delete(r.lectures, id)
	return lecture, nil
}

type fakePurchaseRepo struct{ purchases map[string]*entity.Purchase }

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: map[string]*entity.Purchase{}}
}

func (r *fakePurchaseRepo) EnsureIndexes(context.Context) error { return nil }

func (r *fakePurchaseRepo) CreatePurchase(_ context.Context, purchase *entity.Purchase) error {
	for _, p := range r.purchases {
		if p.UserID == purchase.UserID && p.CourseID == purchase.CourseID &&
			(p.Status == entity.PurchaseStatusPending || p.Status == entity.PurchaseStatusCompleted) {
			return apperr.ErrConflict
		}
	}
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) GetActivePurchase(_ context.Context, userID, courseID string) (*entity.Purchase, error) {
	for _, p := range r.purchases {
		if p.UserID == userID && p.CourseID == courseID &&
			(p.Status == entity.PurchaseStatusPending || p.Status == entity.PurchaseStatusCompleted) {
			return p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakePurchaseRepo) GetCompletedPurchase(_ context.Context, userID, courseID string) (*entity.Purchase, error) {
	for _, p := range r.purchases {
		if p.UserID == userID && p.CourseID == courseID && p.Status == entity.PurchaseStatusCompleted {
			return p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakePurchaseRepo) CompleteByPaymentID(_ context.Context, paymentID string, amount float64) (*entity.Purchase, error) {
	for _, p := range r.purchases {
		if p.PaymentID == paymentID && p.Status == entity.PurchaseStatusPending {
			p.Status = entity.PurchaseStatusCompleted
			p.Amount = amount
			return p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakePurchaseRepo) GetCompletedPurchases(context.Context) ([]*entity.Purchase, error) {
	result := []*entity.Purchase{}
	for _, p := range r.purchases {
		if p.Status == entity.PurchaseStatusCompleted {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeTokenRepo struct{ tokens map[string]*entity.Token }

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*entity.Token{}}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token *entity.Token) error {
	r.tokens[token.ID] = token
	return nil
}

func (r *fakeTokenRepo) GetActiveTokenByUserID(_ context.Context, userID string, tokenType entity.TokenType) (*entity.Token, error) {
	var latest *entity.Token
	for _, t := range r.tokens {
		if t.UserID != userID || t.TokenType != tokenType || t.Revoked || t.ExpiresAt.Before(time.Now()) {
			continue
		}
		if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	if latest == nil {
		return nil, apperr.ErrNotFound
	}
	return latest, nil
}

func (r *fakeTokenRepo) RevokeToken(_ context.Context, id string) error {
	token, ok := r.tokens[id]
	if !ok {
		return apperr.ErrNotFound
	}
	token.Revoked = true
	return nil
}
