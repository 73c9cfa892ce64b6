//
//  internal/requestinfo/requestinfo.go
//
//  Per-request visitor metadata: user-agent fingerprint, client IP with
//  optional geolocation, URL, and timestamp.  The structs are inert and
//  hold no handles, so they are safe to log or pass to templates.
//
//  Dependencies
//  • github.com/avct/uasurfer          (UA parsing)
//  • github.com/oschwald/geoip2-golang (MaxMind lookup)
//

package requestinfo

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

//
//  -----------------------------
//  Struct definitions
//  -----------------------------
//

// UA holds the parsed user-agent properties used by the visitor log.
type UA struct {
	Raw     string // Entire User-Agent header
	Browser string // "Chrome", "Firefox", "Safari", etc.
	Version string // "124.0.6367"
	OS      string // "macOS", "Windows", "Android", "iOS", etc.
	Device  string // "Desktop", "Phone", "Tablet", ...
	IsBot   bool   // True if UA matches a crawler signature
}

// Geo holds IP-based geolocation hints.  All fields except IP stay
// empty when no GeoLite2 database is configured or the DB has no match.
type Geo struct {
	IP         net.IP // Client address after X-Forwarded-For resolution
	CountryISO string // "US", "UA", "FR", ...
	City       string // "Chicago", "Kyiv", ...
}

// Info is what the Enrich middleware stores in the request context.
type Info struct {
	UA        UA
	Geo       Geo
	URL       *url.URL // Pointer copy, safe to dereference read-only
	Timestamp time.Time
}

//
//  -----------------------------
//  Package-level state
//  -----------------------------
//

// geoReader is a singleton MaxMind handle.  It stays nil when the site
// runs without a GeoLite2 database, in which case lookups degrade to
// IP-only Geo values.  Concurrent reads are safe.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2-City database at startup.  An empty path
// disables geolocation without error; a bad path is reported so main()
// can decide whether to continue.
func InitGeo(dbPath string) error {
	if dbPath == "" {
		return nil
	}
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

//
//  -----------------------------
//  Public helper: FromContext
//  -----------------------------
//

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich.
// It returns nil if the middleware has not run.
func FromContext(ctx context.Context) *Info {
	v, _ := ctx.Value(ctxKey{}).(*Info)
	return v
}

//
//  -----------------------------
//  Internal helpers
//  -----------------------------
//

// parseUA converts a raw header into our UA struct using uasurfer.
func parseUA(uaHeader string) UA {
	u := uasurfer.Parse(uaHeader)

	osName := strings.TrimPrefix(u.OS.Name.String(), "OS")
	if osName == "MacOSX" {
		osName = "macOS"
	}

	return UA{
		Raw:     uaHeader,
		Browser: strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		Version: trimVersion(u.Browser.Version),
		OS:      osName,
		Device:  deviceTypeToString(u.DeviceType),
		IsBot:   u.IsBot(),
	}
}

// trimVersion builds "major.minor.patch" and removes trailing ".0".
func trimVersion(v uasurfer.Version) string {
	out := strings.Join([]string{
		strconv.Itoa(v.Major),
		strconv.Itoa(v.Minor),
		strconv.Itoa(v.Patch),
	}, ".")
	for strings.HasSuffix(out, ".0") {
		out = strings.TrimSuffix(out, ".0")
	}
	if out == "" {
		return "0"
	}
	return out
}

// deviceTypeToString maps uasurfer.DeviceType to a user-friendly string.
func deviceTypeToString(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return "Unknown"
	}
}

// lookupGeo returns best-effort Geo data using the global reader.
func lookupGeo(ip net.IP) Geo {
	if geoReader == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := geoReader.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	return Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}
