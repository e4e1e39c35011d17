package validation

import (
	"testing"

	"pocketbank/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestTransferAmount() {
	tests := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"whole amount", "100", true},
		{"two decimal places", "100.00", true},
		{"small amount", "0.01", true},
		{"amount with surrounding spaces", " 25.50 ", true},
		{"zero", "0", false},
		{"negative", "-5", false},
		{"not a number", "abc", false},
		{"empty", "", false},
		{"three decimal places", "1.234", false},
		{"number with trailing garbage", "10x", false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.validator.Var(tt.amount, "transfer_amount")
			if tt.valid {
				s.NoError(err)
			} else {
				s.Error(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestSpeechLanguage() {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"american english", "en-US", true},
		{"hindi", "hi-IN", true},
		{"spanish", "es-ES", true},
		{"bare language", "fr", true},
		// Well-formed but unknown regions pass; the announcer falls back later.
		{"well-formed unknown", "en-XA", true},
		{"empty", "", false},
		{"garbage", "not a tag!", false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.validator.Var(tt.code, "speech_language")
			if tt.valid {
				s.NoError(err)
			} else {
				s.Error(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestScreen() {
	s.NoError(s.validator.Var("dashboard", "screen"))
	s.NoError(s.validator.Var("transactions", "screen"))
	s.Error(s.validator.Var("settings", "screen"))
	s.Error(s.validator.Var("", "screen"))
}

func (s *ValidatorTestSuite) TestTransferRequestStruct() {
	s.NoError(s.validator.Struct(&dto.TransferRequest{Amount: "250.00"}))
	s.Error(s.validator.Struct(&dto.TransferRequest{Amount: "-1"}))
	s.Error(s.validator.Struct(&dto.TransferRequest{}))
}

func TestGetValidator_Singleton(t *testing.T) {
	first := GetValidator()
	second := GetValidator()

	assert.Same(t, first, second)
}
