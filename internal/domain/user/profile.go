package user

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-api/internal/pkg/patch"
)

var (
	ErrInvalidProfile     = errors.New("profile field exceeds maximum length")
	ErrInvalidCountry     = errors.New("primary country must be ISO 3166 alpha-2")
	ErrInvalidAvatarURL   = errors.New("avatar url must be an http(s) url")
	ErrAlreadyDeactivated = errors.New("account is already deactivated")
)

const (
	MaxDisplayNameLength = 100
	MaxBioLength         = 1000
	MaxPhoneLength       = 20
	MaxCityLength        = 100
)

var countryRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// Profile is the optional public part of an account.
type Profile struct {
	displayName    *string
	bio            *string
	phone          *string
	primaryCountry *string
	primaryCity    *string
	avatarURL      *string
}

type ProfileInput struct {
	DisplayName    *string
	Bio            *string
	Phone          *string
	PrimaryCountry *string
	PrimaryCity    *string
	AvatarURL      *string
}

// NewProfile trims every field; blank fields are stored as absent.
func NewProfile(in ProfileInput) (Profile, error) {
	var p Profile
	var err error
	if p.displayName, err = boundedText(in.DisplayName, MaxDisplayNameLength); err != nil {
		return Profile{}, err
	}
	if p.bio, err = boundedText(in.Bio, MaxBioLength); err != nil {
		return Profile{}, err
	}
	if p.phone, err = boundedText(in.Phone, MaxPhoneLength); err != nil {
		return Profile{}, err
	}
	if p.primaryCity, err = boundedText(in.PrimaryCity, MaxCityLength); err != nil {
		return Profile{}, err
	}
	if c := blankToNil(in.PrimaryCountry); c != nil {
		upper := strings.ToUpper(*c)
		if !countryRegex.MatchString(upper) {
			return Profile{}, ErrInvalidCountry
		}
		p.primaryCountry = &upper
	}
	if a := blankToNil(in.AvatarURL); a != nil {
		u, err := url.Parse(*a)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Profile{}, ErrInvalidAvatarURL
		}
		p.avatarURL = a
	}
	return p, nil
}

func ReconstructProfile(displayName, bio, phone, primaryCountry, primaryCity, avatarURL *string) Profile {
	return Profile{
		displayName:    displayName,
		bio:            bio,
		phone:          phone,
		primaryCountry: primaryCountry,
		primaryCity:    primaryCity,
		avatarURL:      avatarURL,
	}
}

func (p Profile) input() ProfileInput {
	return ProfileInput{
		DisplayName:    p.displayName,
		Bio:            p.bio,
		Phone:          p.phone,
		PrimaryCountry: p.primaryCountry,
		PrimaryCity:    p.primaryCity,
		AvatarURL:      p.avatarURL,
	}
}

func (p Profile) DisplayName() *string    { return p.displayName }
func (p Profile) Bio() *string            { return p.bio }
func (p Profile) Phone() *string          { return p.phone }
func (p Profile) PrimaryCountry() *string { return p.primaryCountry }
func (p Profile) PrimaryCity() *string    { return p.primaryCity }
func (p Profile) AvatarURL() *string      { return p.avatarURL }

// ProfileUpdate is a partial update. An empty string clears an optional field.
type ProfileUpdate struct {
	FirstName      *string
	LastName       *string
	DisplayName    *string
	Bio            *string
	Phone          *string
	PrimaryCountry *string
	PrimaryCity    *string
	AvatarURL      *string
}

// UpdateProfile validates every set field before writing any of them.
func (u *User) UpdateProfile(in ProfileUpdate, now time.Time) error {
	if !u.isActive {
		return ErrAlreadyDeactivated
	}
	first, last := u.name.first, u.name.last
	patch.Apply(&first, in.FirstName)
	patch.Apply(&last, in.LastName)
	name, err := NewName(first, last)
	if err != nil {
		return err
	}

	pin := u.profile.input()
	patch.ApplyOptional(&pin.DisplayName, in.DisplayName)
	patch.ApplyOptional(&pin.Bio, in.Bio)
	patch.ApplyOptional(&pin.Phone, in.Phone)
	patch.ApplyOptional(&pin.PrimaryCountry, in.PrimaryCountry)
	patch.ApplyOptional(&pin.PrimaryCity, in.PrimaryCity)
	patch.ApplyOptional(&pin.AvatarURL, in.AvatarURL)
	profile, err := NewProfile(pin)
	if err != nil {
		return err
	}

	u.name = name
	u.profile = profile
	u.updatedAt = now
	return nil
}

// Deactivate closes the account. Login and refresh refuse inactive accounts.
func (u *User) Deactivate(now time.Time) error {
	if !u.isActive {
		return ErrAlreadyDeactivated
	}
	u.isActive = false
	u.updatedAt = now
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func boundedText(s *string, max int) (*string, error) {
	t := blankToNil(s)
	if t != nil && utf8.RuneCountInString(*t) > max {
		return nil, ErrInvalidProfile
	}
	return t, nil
}
