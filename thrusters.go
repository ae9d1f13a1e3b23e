package orbitalshield

// standardGravity is the g0 used to convert specific impulse to exhaust velocity, in m/s^2.
const standardGravity = 9.81

// Thruster is a continuous propulsion system sized from the mass of its platform.
type Thruster interface {
	// Thrust returns the thrust in Newtons and the specific impulse in seconds
	// delivered by a platform of the given mass in kg.
	Thrust(platformMass float64) (thrust, isp float64)
}

// IonThruster is a gridded ion engine whose electrical power scales with the platform.
type IonThruster struct {
	PowerPerKg float64 // W/kg
	Isp        float64 // s
}

// Thrust implements the Thruster interface: T = P / (Isp g0).
func (t IonThruster) Thrust(platformMass float64) (thrust, isp float64) {
	if platformMass <= 0 || t.Isp <= 0 {
		return 0, t.Isp
	}
	return platformMass * t.PowerPerKg / (t.Isp * standardGravity), t.Isp
}

// MassDriverThruster ejects asteroid regolith at a fixed velocity.
type MassDriverThruster struct {
	RatePerKg       float64 // kg/s of ejecta per kg of equipment
	ExhaustVelocity float64 // m/s
}

// Thrust implements the Thruster interface: T = mdot ve.
func (t MassDriverThruster) Thrust(platformMass float64) (thrust, isp float64) {
	isp = t.ExhaustVelocity / standardGravity
	if platformMass <= 0 {
		return 0, isp
	}
	return platformMass * t.RatePerKg * t.ExhaustVelocity, isp
}

// Propulsion models of the continuous deflection methods.
var (
	// DefaultIonBeam provides 1 kW per 10 kg at 3000 s.
	DefaultIonBeam = IonThruster{PowerPerKg: 100, Isp: 3000}
	// DefaultMassDriver ejects 1 kg/s per tonne of equipment at 1 km/s.
	DefaultMassDriver = MassDriverThruster{RatePerKg: 1e-3, ExhaustVelocity: 1000}
)
