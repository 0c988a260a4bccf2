package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
		anyErr  bool
	}{
		{name: "valid", body: `{"username":"bob","password":"pw"}`},
		{name: "empty body", body: ``, wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"username":`, anyErr: true},
		{name: "trailing value", body: `{"username":"bob"} {"x":1}`, anyErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			var got credentials
			err := DecodeJSON(httptest.NewRecorder(), req, &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "bob", got.Username)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(credentials{Username: "bob", Password: "pw"}))
	assert.Error(t, ValidateRequest(credentials{Username: "bob"}))
}
