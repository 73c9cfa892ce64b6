// internal/config/model.go
//
// Typed configuration model for Swimspot.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                             – dotenv values,
//   • `conf/global.yaml`                          – primary static file,
//   • `SWIMSPOT_`-prefixed environment overrides  – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Backend section
//

// Backend points at the gateway in front of the auth, place, rating, and
// comment services.  All collaborator paths are resolved against BaseURL.
type Backend struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

//
// Session section
//

// Session controls credential persistence.  StateDir may be relative, in
// which case it resolves against Paths.Root.
type Session struct {
	StateDir string `koanf:"state_dir" validate:"required"`
}

//
// Geo section (optional)
//

// Geo names the MaxMind database used by the request-info middleware.  An
// empty path disables geo lookups; everything else keeps working.
type Geo struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or SWIMSPOT_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // SWIMSPOT_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Backend Backend `koanf:"backend"`
	Session Session `koanf:"session"`
	Geo     Geo     `koanf:"geo"`
	Paths   Paths   `koanf:"-"` // not loaded from config files
}
