// Package cli implements the ecoestate agent command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/ecoestate/internal/client/auth"
	"github.com/iudanet/ecoestate/internal/client/catalog"
	"github.com/iudanet/ecoestate/internal/client/connectivity"
	"github.com/iudanet/ecoestate/internal/client/iocli"
)

// Passwords carries the non-interactive password sources
type Passwords struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io        iocli.IO
	session   *auth.Service
	catalog   *catalog.Service
	monitor   *connectivity.Monitor
	passwords Passwords
}

func New(
	io iocli.IO,
	session *auth.Service,
	catalogService *catalog.Service,
	monitor *connectivity.Monitor,
	passwords Passwords,
) *Cli {
	return &Cli{
		io:        io,
		session:   session,
		catalog:   catalogService,
		monitor:   monitor,
		passwords: passwords,
	}
}

// getPassword retrieves the agent password with priority:
// 1. Environment variable ECOESTATE_PASSWORD
// 2. File specified via --password-file
// 3. Command-line parameter --password
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword() (string, error) {
	if envPassword := os.Getenv("ECOESTATE_PASSWORD"); envPassword != "" {
		return envPassword, nil
	}

	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

func PrintUsage() {
	fmt.Println("EcoEstate Agent Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ecoestate [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version              Show version information")
	fmt.Println("  --server URL           Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH              Path to local cache database (default: ecoestate-client.db)")
	fmt.Println("  --password PASSWORD    Agent password (not recommended, use env var or file)")
	fmt.Println("  --password-file PATH   Path to file containing agent password")
	fmt.Println()
	fmt.Println("Password Priority (highest to lowest):")
	fmt.Println("  1. ECOESTATE_PASSWORD environment variable")
	fmt.Println("  2. --password-file (file path)")
	fmt.Println("  3. --password (command line)")
	fmt.Println("  4. Interactive prompt (fallback)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login <username>                      Login to server")
	fmt.Println("  logout                                Logout and drop the saved session")
	fmt.Println("  status                                Show session, connectivity and cache status")
	fmt.Println("  properties [filters]                  List properties (works offline from cache)")
	fmt.Println("  regions                               List market regions")
	fmt.Println("  features                              List eco features")
	fmt.Println("  projects                              List your construction projects")
	fmt.Println("  inquire <property-id>                 Submit a buyer inquiry")
	fmt.Println("  milestone <project-id> <milestone-id> <done|undone>")
	fmt.Println("                                        Toggle a project milestone")
	fmt.Println("  note <project-id>                     Add a note to a project")
	fmt.Println("  refresh [collection]                  Force a network refresh of cached data")
	fmt.Println("  sync [--force] [--watch]              Replay queued offline actions now, or keep watching")
	fmt.Println()
	fmt.Println("Property filters:")
	fmt.Println("  --region ID            Only properties in the region")
	fmt.Println("  --status STATUS        available, reserved or sold")
	fmt.Println("  --max-price N          Price ceiling")
	fmt.Println("  --min-bedrooms N       Bedroom floor")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ecoestate login agent_ivanova")
	fmt.Println("  ecoestate properties --region r-ladoga --max-price 40000000")
	fmt.Println("  ecoestate inquire p-1042")
	fmt.Println("  ecoestate milestone pr-17 m-foundation done")
	fmt.Println("  ecoestate sync --force")
	fmt.Println("  ecoestate --server https://api.ecoestate.example.com status")
}
