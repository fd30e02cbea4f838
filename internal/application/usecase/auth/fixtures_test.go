package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory adapter.UserRepository used across the auth
// use case tests.
type fakeUserRepo struct {
	users  map[uint]*entity.User
	nextID uint

	createErr error
	updateErr error
	existsErr error

	updated *entity.User
	deleted []uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uint]*entity.User),
		nextID: 1,
	}
}

func (r *fakeUserRepo) seed(email, password string) *entity.User {
	user := entity.NewUser(email, "Test User", fakeHash(password))
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	copied := *user
	r.users[user.ID] = &copied
	r.updated = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakePasswordService hashes by prefixing so tests can assert on the stored
// value without real bcrypt work.
type fakePasswordService struct {
	hashErr error
}

func fakeHash(plain string) string {
	return "hashed:" + plain
}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}
	return fakeHash(password), nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != fakeHash(password) {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// fakeTokenService issues sequential token pairs and tracks revocations.
type fakeTokenService struct {
	pairs int

	generateErr  error
	refreshErr   error
	refreshValid bool
	validityErr  error

	refreshClaims *adapterClaims

	revokedTokens []string
	revokedUsers  []uint
}

type adapterClaims struct {
	userID uint
	email  string
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{refreshValid: true}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uint, email string, _ bool) (*adapter.TokenPair, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	s.pairs++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d-%s-%d", userID, email, s.pairs),
		RefreshToken: fmt.Sprintf("refresh-%d-%s-%d", userID, email, s.pairs),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used in these tests")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	claims := s.refreshClaims
	if claims == nil {
		claims = &adapterClaims{userID: 1, email: "user@example.com"}
	}
	return &adapter.TokenClaims{UserID: claims.userID, Email: claims.email}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.revokedTokens = append(s.revokedTokens, token)
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, userID uint) error {
	s.revokedUsers = append(s.revokedUsers, userID)
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, _ string) (bool, error) {
	if s.validityErr != nil {
		return false, s.validityErr
	}
	return s.refreshValid, nil
}

// fakeQuestionRepo is an in-memory adapter.SecurityQuestionRepository.
type fakeQuestionRepo struct {
	questions map[uint]*entity.SecurityQuestion
	answers   map[uint]*entity.SecurityAnswer

	saveErr       error
	findAnswerErr error
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	repo := &fakeQuestionRepo{
		questions: make(map[uint]*entity.SecurityQuestion),
		answers:   make(map[uint]*entity.SecurityAnswer),
	}
	for i, question := range entity.SecurityQuestionCatalogue() {
		question.ID = uint(i + 1)
		repo.questions[question.ID] = question
	}
	return repo
}

func (r *fakeQuestionRepo) seedAnswer(userID, questionID uint, answer string) {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	r.answers[userID] = entity.NewSecurityAnswer(userID, questionID, fakeHash(normalized))
}

func (r *fakeQuestionRepo) SeedQuestions(_ context.Context, questions []*entity.SecurityQuestion) error {
	for _, question := range questions {
		r.questions[question.ID] = question
	}
	return nil
}

func (r *fakeQuestionRepo) FindAllQuestions(_ context.Context) ([]*entity.SecurityQuestion, error) {
	out := make([]*entity.SecurityQuestion, 0, len(r.questions))
	for id := uint(1); id <= uint(len(r.questions)); id++ {
		out = append(out, r.questions[id])
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindQuestionByID(_ context.Context, id uint) (*entity.SecurityQuestion, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, domainerror.ErrUnknownSecurityQuestion
	}
	return question, nil
}

func (r *fakeQuestionRepo) SaveAnswer(_ context.Context, answer *entity.SecurityAnswer) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.answers[answer.UserID] = answer
	return nil
}

func (r *fakeQuestionRepo) FindAnswerByUserID(_ context.Context, userID uint) (*entity.SecurityAnswer, error) {
	if r.findAnswerErr != nil {
		return nil, r.findAnswerErr
	}
	answer, ok := r.answers[userID]
	if !ok {
		return nil, nil
	}
	return answer, nil
}
