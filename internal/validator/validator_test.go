package validator_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rodrigoasouza93/brdocs/internal/lookup"
	"github.com/rodrigoasouza93/brdocs/internal/validator"
	"github.com/rodrigoasouza93/brdocs/internal/validator/mocks"
)

type ValidatorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	lookup    *mocks.MockPostalLookup
	validator *validator.DocumentValidator
	ctx       context.Context
}

func (s *ValidatorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lookup = mocks.NewMockPostalLookup(s.ctrl)
	s.validator = validator.New(s.lookup)
	s.ctx = context.Background()
}

func (s *ValidatorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) TestValidateCEP_ConfirmedByLookup() {
	s.lookup.EXPECT().Exists(gomock.Any(), "01001000").Return(true, nil).Times(1)

	ok, err := s.validator.ValidateCEP(s.ctx, "01001-000")

	s.Require().NoError(err)
	s.True(ok)
}

func (s *ValidatorSuite) TestValidateCEP_RejectedByLookup() {
	s.lookup.EXPECT().Exists(gomock.Any(), "01001000").Return(false, nil).Times(1)

	ok, err := s.validator.ValidateCEP(s.ctx, "01001000")

	s.Require().NoError(err)
	s.False(ok)
}

func (s *ValidatorSuite) TestValidateCEP_MalformedSkipsLookup() {
	// no EXPECT: any call to the lookup fails the test
	for _, raw := range []string{"01001-00", "01001-0000", "0100A-000", "01001.000", "1234567", ""} {
		ok, err := s.validator.ValidateCEP(s.ctx, raw)
		s.NoError(err, raw)
		s.False(ok, raw)
	}
}

func (s *ValidatorSuite) TestValidateCEP_PropagatesTransportFailure() {
	transportErr := &lookup.Error{Kind: lookup.KindBadStatus, StatusCode: http.StatusInternalServerError, Message: "unexpected status"}
	s.lookup.EXPECT().Exists(gomock.Any(), "20040002").Return(false, transportErr)

	ok, err := s.validator.ValidateCEP(s.ctx, "20040-002")

	s.False(ok)
	s.Same(transportErr, err, "error must be returned unwrapped")
	s.ErrorIs(err, lookup.ErrTransport)
}

func (s *ValidatorSuite) TestValidateCEP_PassesContext() {
	type ctxKey struct{}
	ctx := context.WithValue(s.ctx, ctxKey{}, "trace")
	s.lookup.EXPECT().
		Exists(gomock.Any(), "01001000").
		DoAndReturn(func(got context.Context, _ string) (bool, error) {
			s.Equal("trace", got.Value(ctxKey{}))
			return true, nil
		})

	ok, err := s.validator.ValidateCEP(ctx, "01001000")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ValidatorSuite) TestValidateCPF() {
	s.True(s.validator.ValidateCPF("111.444.777-35"))
	s.True(s.validator.ValidateCPF("11144477735"))
	s.False(s.validator.ValidateCPF("111.111.111-11"))
	s.False(s.validator.ValidateCPF("111.444.777-36"))
}

func (s *ValidatorSuite) TestValidateCNPJ() {
	s.True(s.validator.ValidateCNPJ("06.990.590/0001-23"))
	s.True(s.validator.ValidateCNPJ("06990590000123"))
	s.False(s.validator.ValidateCNPJ("00.000.000/0000-00"))
}

func (s *ValidatorSuite) TestValidate_NonStringInput() {
	inputs := []any{
		11144477735,
		int64(6990590000123),
		3.14,
		true,
		false,
		nil,
		[]string{"01001-000"},
		[]any{"111.444.777-35"},
		map[string]any{"cpf": "111.444.777-35"},
		[]byte("11144477735"),
	}
	kinds := []validator.DocumentType{validator.DocumentTypeCEP, validator.DocumentTypeCPF, validator.DocumentTypeCNPJ}

	for _, kind := range kinds {
		for _, in := range inputs {
			ok, err := s.validator.Validate(s.ctx, kind, in)
			s.ErrorIs(err, validator.ErrInvalidInputType, "%s %#v", kind, in)
			s.False(ok)
		}
	}
}

func (s *ValidatorSuite) TestValidate_TypeCheckedBeforeKind() {
	_, err := s.validator.Validate(s.ctx, "rg", 42)
	s.ErrorIs(err, validator.ErrInvalidInputType)
}

func (s *ValidatorSuite) TestValidate_UnknownKind() {
	ok, err := s.validator.Validate(s.ctx, "rg", "12.345.678-9")
	s.ErrorIs(err, validator.ErrUnknownDocumentType)
	s.False(ok)
}

func (s *ValidatorSuite) TestValidate_Dispatch() {
	s.lookup.EXPECT().Exists(gomock.Any(), "01001000").Return(true, nil)

	ok, err := s.validator.Validate(s.ctx, validator.DocumentTypeCEP, "01001-000")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.validator.Validate(s.ctx, validator.DocumentTypeCPF, "529.982.247-25")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.validator.Validate(s.ctx, validator.DocumentTypeCNPJ, "00000000000191")
	s.Require().NoError(err)
	s.True(ok)
}

func TestValidateCEP_ErrorIsNeverFalseOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockPostalLookup(ctrl)
	unreachable := errors.New("dial tcp: connection refused")
	m.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, unreachable)

	_, err := validator.New(m).ValidateCEP(context.Background(), "01001-000")

	require.Error(t, err)
	assert.Equal(t, unreachable, err)
}
