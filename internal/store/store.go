package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bookworm/internal/domain"
	"bookworm/internal/validate"
)

// Clock supplies timestamps so tests can pin time.
type Clock interface {
	Now() time.Time
}

// IDGen supplies entity ids and listing order numbers.
type IDGen interface {
	NewID() string
	OrderNumber() string
}

// Authenticator is the pluggable backend behind login, registration and
// password reset. StubAuthenticator in the services package always succeeds,
// matching the prototype; a real implementation can be injected without
// touching call sites.
type Authenticator interface {
	Authenticate(email, password string) error
	Register(name, email, password string) error
	ResetPassword(email string) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type randomIDs struct{}

func (randomIDs) NewID() string { return uuid.NewString() }

// OrderNumber picks a 6-digit zero-padded numeral, "#001234".
func (randomIDs) OrderNumber() string {
	return fmt.Sprintf("#%06d", rand.Intn(999000)+1000)
}

// Profile holds the seller's store profile fields from setup.
type Profile struct {
	FullName     string `json:"full_name"`
	StoreName    string `json:"store_name"`
	PrimaryEmail string `json:"primary_email"`
	MobilePhone  string `json:"mobile_phone"`
	Address      string `json:"address"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
}

// Address is a mailing address, used for the return address.
type Address struct {
	Address  string `json:"address"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// NotificationSettings are the profile screen toggles.
type NotificationSettings struct {
	GeneralUpdates  bool `json:"general_updates"`
	NewPurchases    bool `json:"new_purchases"`
	ShippingUpdates bool `json:"shipping_updates"`
}

// Store is the single mutable aggregate every screen binds to. All mutation
// happens under one mutex; each operation completes before the next is
// observed, so readers always see a consistent snapshot.
type Store struct {
	mu    sync.Mutex
	clock Clock
	ids   IDGen
	auth  Authenticator

	// session
	loginEmail         string
	loginPassword      string
	registerName       string
	registerEmail      string
	registerPassword   string
	agreedToTerms      bool
	forgotPasswordMail string
	authenticated      bool
	onboardingComplete bool

	profile       Profile
	returnAddress Address
	notifications NotificationSettings

	draft       Draft
	draftPhotos map[domain.PhotoSlot][]byte

	listings       []domain.BookListing
	banks          []domain.LinkedBank
	selectedBankID string
	transactions   []domain.EarningsTransaction
	requests       []domain.SupportRequest
	balance        decimal.Decimal
}

// Options configures injected collaborators; zero values get working defaults.
type Options struct {
	Clock Clock
	IDs   IDGen
	Auth  Authenticator
}

func New(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = randomIDs{}
	}
	s := &Store{
		clock:         opts.Clock,
		ids:           opts.IDs,
		auth:          opts.Auth,
		agreedToTerms: true,
		draftPhotos:   map[domain.PhotoSlot][]byte{},
	}
	s.profile.Country = "United States"
	s.returnAddress.Country = "United States"
	return s
}

// ---------- session fields ----------

func (s *Store) SetLogin(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginEmail = email
	s.loginPassword = password
}

func (s *Store) SetRegistration(name, email, password string, agreedToTerms bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registerName = name
	s.registerEmail = email
	s.registerPassword = password
	s.agreedToTerms = agreedToTerms
}

func (s *Store) SetForgotPasswordEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forgotPasswordMail = email
}

// LoginEmailError is "" for both a valid address and empty input; an error is
// only shown once something was typed.
func (s *Store) LoginEmailError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validate.EmailError(s.loginEmail)
}

func (s *Store) RegisterEmailError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validate.EmailError(s.registerEmail)
}

// ---------- composite gates (pure over current fields, recomputed per call) ----------

func (s *Store) CanLogin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validate.AllPresent(s.loginEmail, s.loginPassword) && validate.Email(s.loginEmail)
}

func (s *Store) CanRegister() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validate.AllPresent(s.registerName, s.registerEmail, s.registerPassword) &&
		validate.Email(s.registerEmail) && s.agreedToTerms
}

func (s *Store) CanResetPassword() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forgotPasswordMail != "" && validate.Email(s.forgotPasswordMail)
}

func (s *Store) CanProceedToPhotos() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft
	return validate.AllPresent(d.Author, d.Title, d.ISBN, d.Publisher,
		d.DatePublished, d.Genre, d.Condition, d.BindingType)
}

func (s *Store) CanProceedFromSetup() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile
	return validate.AllPresent(p.FullName, p.StoreName, p.PrimaryEmail, p.MobilePhone,
		p.Address, p.City, p.State, p.ZipCode, p.Country) && validate.Email(p.PrimaryEmail)
}

// ---------- session actions ----------

// Login checks credentials with the injected authenticator. The session flag
// is untouched; only account creation authenticates in this prototype.
func (s *Store) Login() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auth != nil {
		if err := s.auth.Authenticate(s.loginEmail, s.loginPassword); err != nil {
			return err
		}
	}
	return nil
}

// CreateAccount registers through the authenticator and marks the session
// authenticated.
func (s *Store) CreateAccount() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auth != nil {
		if err := s.auth.Register(s.registerName, s.registerEmail, s.registerPassword); err != nil {
			return err
		}
	}
	s.authenticated = true
	return nil
}

func (s *Store) ResetPassword() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auth != nil {
		return s.auth.ResetPassword(s.forgotPasswordMail)
	}
	return nil
}

// CompleteOnboarding flips the flag once store setup is done.
func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboardingComplete = true
}

func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Store) OnboardingComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboardingComplete
}

// ---------- profile & addresses ----------

func (s *Store) SetProfile(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

func (s *Store) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Store) SetReturnAddress(a Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returnAddress = a
}

func (s *Store) ReturnAddress() Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.returnAddress
}

// InitializeReturnAddress copies the store address into the return address the
// first time around. The check is on the street line only: blanking it and
// calling again re-populates, a quirk carried over from the prototype.
func (s *Store) InitializeReturnAddress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.returnAddress.Address != "" {
		return
	}
	s.returnAddress = Address{
		Address:  s.profile.Address,
		Address2: s.profile.Address2,
		City:     s.profile.City,
		State:    s.profile.State,
		ZipCode:  s.profile.ZipCode,
		Country:  s.profile.Country,
	}
}

func (s *Store) SetNotificationSettings(n NotificationSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = n
}

func (s *Store) NotificationSettings() NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}
