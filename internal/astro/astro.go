// Package astro is the built-in ephemeris provider: sun event instants
// from a zenith-angle calculation, lunar phase from the ecliptic
// longitudes of the Sun and Moon, and seasonal markers from Meeus
// solstice/equinox series. Accuracy is a few minutes for sun events
// and one or two hours of phase angle, which is plenty for a clock
// face.
package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"

	"github.com/skywheel/almanac/pkg/almanac"
	"github.com/skywheel/almanac/pkg/annualring"
	"github.com/skywheel/almanac/pkg/lunarring"
	"github.com/skywheel/almanac/pkg/solarring"
)

// Sun altitudes in degrees defining each event pair. Sunrise uses the
// standard refraction-corrected value.
const (
	altSunrise      = -0.833
	altCivil        = -6.0
	altNautical     = -12.0
	altAstronomical = -18.0
)

// Provider computes astronomical inputs without external services. It
// is stateless and safe for concurrent use.
type Provider struct{}

// NewProvider returns the built-in ephemeris provider.
func NewProvider() *Provider {
	return &Provider{}
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }

func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// declination returns the solar declination in radians for a day of year.
func declination(dayOfYear int) float64 {
	doy := float64(dayOfYear)
	inner := degToRad(356.6 + 0.9856*doy)
	outer := degToRad(278.97 + 0.9856*doy + 1.9165*math.Sin(inner))
	return math.Asin(0.39785 * math.Sin(outer))
}

// equationOfTime returns the equation of time in minutes, combining
// the obliquity and eccentricity effects of Earth's orbit.
func equationOfTime(t time.Time) float64 {
	T := (julian.TimeToJD(t) - 2451545.0) / 36525.0

	L0 := normalizeAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := normalizeAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60

	y := math.Tan(degToRad(eps0) / 2)
	y *= y
	return radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4
}

// hourAngle returns the hour angle in hours at which the sun reaches
// the given altitude, or false when it never does on that day.
func hourAngle(latitude float64, decl, altitude float64) (float64, bool) {
	latRad := degToRad(latitude)
	cosH := (math.Sin(degToRad(altitude)) - math.Sin(latRad)*math.Sin(decl)) /
		(math.Cos(latRad) * math.Cos(decl))
	if cosH < -1 || cosH > 1 {
		return 0, false
	}
	return radToDeg(math.Acos(cosH)) / 15, true
}

// SunEvents computes the sun event instants in UTC for the calendar
// day containing the instant. Events the sun never reaches at that
// latitude and season come back nil.
func (p *Provider) SunEvents(date time.Time, latitude, longitude float64) (solarring.SunEvents, error) {
	u := date.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	doy := u.YearDay()

	decl := declination(doy)
	noonRef := midnight.Add(12 * time.Hour)

	// Solar noon in minutes from midnight UTC: each degree of
	// longitude is 4 minutes, east of Greenwich means earlier.
	noonMinutes := 720 - longitude*4 - equationOfTime(noonRef)

	at := func(minutes float64) *time.Time {
		t := midnight.Add(time.Duration(minutes * float64(time.Minute)))
		return &t
	}

	var ev solarring.SunEvents
	ev.SolarNoon = at(noonMinutes)

	pair := func(altitude float64) (*time.Time, *time.Time) {
		ha, ok := hourAngle(latitude, decl, altitude)
		if !ok {
			return nil, nil
		}
		return at(noonMinutes - ha*60), at(noonMinutes + ha*60)
	}

	ev.Sunrise, ev.Sunset = pair(altSunrise)
	ev.Dawn, ev.Dusk = pair(altCivil)
	ev.NauticalDawn, ev.NauticalDusk = pair(altNautical)
	ev.NightEnd, ev.Night = pair(altAstronomical)

	return ev, nil
}

// Phase returns the lunar phase fraction in [0, 1) for a UTC instant,
// from the elongation of the Moon's ecliptic longitude over the Sun's.
func (p *Provider) Phase(t time.Time) float64 {
	T := (julian.TimeToJD(t.UTC()) - 2451545.0) / 36525.0
	elongation := normalizeAngle(moonEclipticLongitude(T) - sunEclipticLongitude(T))
	return elongation / 360
}

// MoonState computes the lunar inputs for an instant. Rise, set,
// altitude and azimuth are not derived by this provider.
func (p *Provider) MoonState(t time.Time, latitude, longitude float64) (almanac.MoonState, error) {
	phase := p.Phase(t)
	return almanac.MoonState{
		Phase:        phase,
		Illumination: lunarring.Illumination(phase),
	}, nil
}

// sunEclipticLongitude computes the Sun's ecliptic longitude in
// degrees: mean longitude plus the equation of center.
func sunEclipticLongitude(T float64) float64 {
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := degToRad(normalizeAngle(M))

	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	return normalizeAngle(L0 + C)
}

// moonEclipticLongitude computes the Moon's ecliptic longitude in
// degrees from the dominant periodic terms.
func moonEclipticLongitude(T float64) float64 {
	L := 218.3164477 +
		481267.88123421*T -
		0.0015786*T*T +
		T*T*T/538841 -
		T*T*T*T/65194000

	D := 297.8501921 +
		445267.1114034*T -
		0.0018819*T*T +
		T*T*T/545868 -
		T*T*T*T/113065000

	Mp := 134.9633964 +
		477198.8675055*T +
		0.0087414*T*T +
		T*T*T/69699 -
		T*T*T*T/14712000

	Drad := degToRad(normalizeAngle(D))
	Mprad := degToRad(normalizeAngle(Mp))

	lambda := L +
		6.289*math.Sin(Mprad) +
		1.274*math.Sin(2*Drad-Mprad) +
		0.658*math.Sin(2*Drad) +
		0.214*math.Sin(2*Mprad) +
		0.110*math.Sin(Drad)

	return normalizeAngle(lambda)
}

// SeasonMarker is an equinox or solstice instant with its fixed angle
// on the year disc.
type SeasonMarker struct {
	Name  string    `json:"name"`
	Time  time.Time `json:"time"`
	Angle float64   `json:"angle"`
}

// SeasonalEvents returns the four equinox and solstice markers for a
// year, in calendar order.
func SeasonalEvents(year int) []SeasonMarker {
	mk := func(name string, jde float64) SeasonMarker {
		t := julian.JDToTime(jde)
		return SeasonMarker{
			Name:  name,
			Time:  t,
			Angle: annualring.EventAngle(year, int(t.Month()), t.Day()),
		}
	}
	return []SeasonMarker{
		mk("March Equinox", solstice.March(year)),
		mk("June Solstice", solstice.June(year)),
		mk("September Equinox", solstice.September(year)),
		mk("December Solstice", solstice.December(year)),
	}
}
