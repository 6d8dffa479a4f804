package models

import "encoding/json"

// Consent Mode signal values understood by the tag manager.
const (
	ConsentGranted = "granted"
	ConsentDenied  = "denied"
)

// ConsentCookieName is the browser cookie that stores the visitor's decision.
const ConsentCookieName = "bbd_cookie_consent_v1"

// ConsentState holds the six configurable Consent Mode signals plus the
// always-granted security signal. The advertising trio and the functional
// pair are always set together.
type ConsentState struct {
	AdStorage              string `json:"ad_storage"`
	AnalyticsStorage       string `json:"analytics_storage"`
	AdUserData             string `json:"ad_user_data"`
	AdPersonalization      string `json:"ad_personalization"`
	FunctionalityStorage   string `json:"functionality_storage"`
	PersonalizationStorage string `json:"personalization_storage"`
	SecurityStorage        string `json:"security_storage"`
}

// DeniedConsent returns the fail-closed default: every configurable signal
// denied, security granted.
func DeniedConsent() ConsentState {
	return ConsentState{
		AdStorage:              ConsentDenied,
		AnalyticsStorage:       ConsentDenied,
		AdUserData:             ConsentDenied,
		AdPersonalization:      ConsentDenied,
		FunctionalityStorage:   ConsentDenied,
		PersonalizationStorage: ConsentDenied,
		SecurityStorage:        ConsentGranted,
	}
}

// GrantedConsent returns the accept-all state.
func GrantedConsent() ConsentState {
	return ConsentState{
		AdStorage:              ConsentGranted,
		AnalyticsStorage:       ConsentGranted,
		AdUserData:             ConsentGranted,
		AdPersonalization:      ConsentGranted,
		FunctionalityStorage:   ConsentGranted,
		PersonalizationStorage: ConsentGranted,
		SecurityStorage:        ConsentGranted,
	}
}

// CustomConsent composes a state from the three user-facing categories.
// Advertising covers ad_storage, ad_user_data and ad_personalization;
// functional covers functionality_storage and personalization_storage.
func CustomConsent(analytics, ads, functional bool) ConsentState {
	state := DeniedConsent()
	if analytics {
		state.AnalyticsStorage = ConsentGranted
	}
	if ads {
		state.AdStorage = ConsentGranted
		state.AdUserData = ConsentGranted
		state.AdPersonalization = ConsentGranted
	}
	if functional {
		state.FunctionalityStorage = ConsentGranted
		state.PersonalizationStorage = ConsentGranted
	}
	return state
}

// AnalyticsAllowed reports whether analytics events may be recorded.
func (s ConsentState) AnalyticsAllowed() bool {
	return s.AnalyticsStorage == ConsentGranted
}

// AdsAllowed reports whether all three advertising signals are granted.
func (s ConsentState) AdsAllowed() bool {
	return s.AdStorage == ConsentGranted &&
		s.AdUserData == ConsentGranted &&
		s.AdPersonalization == ConsentGranted
}

// FunctionalAllowed reports whether both functional signals are granted.
func (s ConsentState) FunctionalAllowed() bool {
	return s.FunctionalityStorage == ConsentGranted &&
		s.PersonalizationStorage == ConsentGranted
}

// JSON returns the consent payload pushed to the tag-manager data layer.
// Marshaling a fixed struct cannot fail; errors degrade to the denied default.
func (s ConsentState) JSON() string {
	b, err := json.Marshal(s)
	if err != nil {
		d, _ := json.Marshal(DeniedConsent())
		return string(d)
	}
	return string(b)
}
