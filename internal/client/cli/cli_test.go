package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/client/iocli"
)

// TestGetPassword_FromEnvVar проверяет чтение пароля из переменной окружения
func TestGetPassword_FromEnvVar(t *testing.T) {
	cli := &Cli{}
	testPassword := "test_env_password_123"
	t.Setenv("ECOESTATE_PASSWORD", testPassword)

	password, err := cli.getPassword()

	require.NoError(t, err)
	assert.Equal(t, testPassword, password)
}

// TestGetPassword_FromFile проверяет чтение пароля из файла
func TestGetPassword_FromFile(t *testing.T) {
	testPassword := "test_file_password_456"
	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte(testPassword+"\n"), 0o600))

	cli := &Cli{passwords: Passwords{FromFile: path}}

	password, err := cli.getPassword()

	require.NoError(t, err)
	assert.Equal(t, testPassword, password)
}

// TestGetPassword_FromCLIParam проверяет чтение пароля из CLI параметра
func TestGetPassword_FromCLIParam(t *testing.T) {
	cli := &Cli{passwords: Passwords{FromArgs: "test_cli_password_789"}}

	password, err := cli.getPassword()

	require.NoError(t, err)
	assert.Equal(t, "test_cli_password_789", password)
}

// Env var имеет приоритет над файлом и CLI параметром
func TestGetPassword_Priority(t *testing.T) {
	envPassword := "env_password"
	t.Setenv("ECOESTATE_PASSWORD", envPassword)

	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte("file_password"), 0o600))

	cli := &Cli{passwords: Passwords{FromFile: path, FromArgs: "cli_password"}}

	password, err := cli.getPassword()

	require.NoError(t, err)
	assert.Equal(t, envPassword, password)
}

func TestGetPassword_FileMissing(t *testing.T) {
	cli := &Cli{passwords: Passwords{FromFile: "/nonexistent/password.txt"}}

	_, err := cli.getPassword()
	require.Error(t, err)
}

func TestGetPassword_FileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

	cli := &Cli{passwords: Passwords{FromFile: path}}

	_, err := cli.getPassword()
	require.Error(t, err)
}

// Последний fallback — интерактивный запрос
func TestGetPassword_PromptFallback(t *testing.T) {
	mockIO := &iocli.IOMock{
		ReadPasswordFunc: func(prompt string) (string, error) {
			return "typed_password", nil
		},
	}
	cli := &Cli{io: mockIO}

	password, err := cli.getPassword()

	require.NoError(t, err)
	assert.Equal(t, "typed_password", password)
	require.Len(t, mockIO.ReadPasswordCalls(), 1)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{0, "0 RUB"},
		{999, "999 RUB"},
		{1000, "1 000 RUB"},
		{52000000, "52 000 000 RUB"},
		{-1500, "-1 500 RUB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.price))
	}
}
