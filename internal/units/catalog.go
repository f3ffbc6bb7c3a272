package units

import "math"

// Unit families.
const (
	Temperature  = "temperature"
	Length       = "length"
	Area         = "area"
	Mass         = "mass"
	Volume       = "volume"
	Time         = "time"
	Frequency    = "frequency"
	Data         = "data"
	Speed        = "speed"
	Torque       = "torque"
	Pressure     = "pressure"
	Force        = "force"
	Voltage      = "voltage"
	Current      = "current"
	Power        = "power"
	Energy       = "energy"
	Angle        = "angle"
	Acceleration = "acceleration"
)

// Base units per family: °C, meter, square meter, gram, liter, second, hertz, bit, meter per
// second, newton-meter, pascal, newton, volt, amp, watt, joule, degree, meter per second squared.
//
// Earlier entries win ties during disambiguation, so the more common unit of an overlapping
// alias is registered first.
func defaultUnits() []UnitDefinition {
	return []UnitDefinition{
		affine(Temperature, false, symbol("°C"), 0, 1, "°c", "c", "celsius"),
		affine(Temperature, false, symbol("°F"), 32, 5.0/9.0, "°f", "f", "fahrenheit"),
		affine(Temperature, true, suffixed("Kelvin"), 273.15, 1, "k", "kelvin", "kelvins"),
		affine(Temperature, false, symbol("°R"), 491.67, 5.0/9.0, "°r", "r", "rankine", "rankines"),

		linear(Length, true, suffixed("Meter"), 1, "m", "meter", "meters", "metre", "metres", "mtr", "mtrs"),
		linear(Length, false, irregular("Inch", "Inches"), 0.0254, "in", "inch", "inches", `"`, "″", "“", "”", "inchs"),
		linear(Length, false, irregular("Foot", "Feet"), 0.3048, "f", "ft", "foot", "feet", "'"),
		linear(Length, false, suffixed("Yard"), 0.9144, "yd", "y", "yard", "yards"),
		linear(Length, false, suffixed("Mile"), 1609.344, "mi", "mile", "miles"),
		linear(Length, false, suffixed("Nautical Mile"), 1852, "nmi", "nautical mile", "nautical miles"),

		linear(Area, true, compound("Square", "Meter", ""), 1, "m²", "square meter", "square meters", "square metre", "square metres", "m2", "sqm", "sq m", "m^2"),
		linear(Area, false, compound("Square", "Inch", "Inches"), 0.00064516, "in²", "square inch", "square inches", "in2", "sq in", "sqin", "in^2"),
		linear(Area, false, compound("Square", "Foot", "Feet"), 0.092903, "ft²", "square foot", "square feet", "ft2", "sq ft", "sqft", "ft^2"),
		linear(Area, false, compound("Square", "Yard", ""), 0.836127, "yd²", "square yard", "square yards", "yd2", "sq yd", "sqyd", "yd^2"),
		linear(Area, false, compound("Square", "Mile", ""), 2.58998811e6, "mi²", "square mile", "square miles", "mi2", "sq mi", "sqmi", "mi^2"),
		linear(Area, true, suffixed("Hectare"), 1e4, "ha", "hectare", "hectares"),
		linear(Area, false, suffixed("Acre"), 4046.86, "acre", "acres", "ac"),

		linear(Mass, true, suffixed("Gram"), 1, "g", "gram", "grams", "gm", "gms"),
		linear(Mass, false, suffixed("Ounce"), 28.3495, "oz", "ounce", "ounces"),
		linear(Mass, false, suffixed("Pound"), 453.592, "lb", "pound", "pounds", "lbs"),
		linear(Mass, false, suffixed("Ton"), 907184.74, "ton", "tons", "t", "short ton", "short tons", "us ton", "us tons"),
		linear(Mass, true, irregular("Ton (metric)", "Tons (metric)"), 1e6, "tonne", "metric ton", "metric tons", "tonnes", "mt"),
		linear(Mass, false, suffixed("Stone"), 63500.0, "st", "stone", "stones"),

		linear(Volume, true, suffixed("Liter"), 1, "l", "liter", "liters", "litre", "litres", "ltr", "ltrs"),
		linear(Volume, true, compound("Cubic", "Meter", ""), 1000, "m³", "cubic meter", "cubic meters", "cubic metre", "cubic metres", "m3", "cu m", "cum", "m^3"),
		linear(Volume, false, compound("Cubic", "Inch", "Inches"), 0.0163871, "in³", "cubic inch", "cubic inches", "in3", "cu in", "cuin", "in^3"),
		linear(Volume, false, compound("Cubic", "Foot", "Feet"), 28.3168, "ft³", "cubic foot", "cubic feet", "ft3", "cu ft", "cuft", "ft^3"),
		linear(Volume, false, compound("Cubic", "Yard", ""), 764.555, "yd³", "cubic yard", "cubic yards", "yd3", "cu yd", "cuyd", "yd^3"),
		linear(Volume, false, irregular("Gallon (US)", "Gallons (US)"), 3.78541, "gal", "gallon", "gallons", "us gallon", "us gallons", "us gal"),
		linear(Volume, false, irregular("Gallon (UK)", "Gallons (UK)"), 4.54609, "gal (uk)", "imperial gallon", "gallon uk", "gallons uk", "imperial gal", "imp gal", "uk gallon", "uk gallons", "uk gal"),
		linear(Volume, false, irregular("Quart (US)", "Quarts (US)"), 0.946353, "qt", "quart", "quarts", "us quart", "us quarts", "us qt"),
		linear(Volume, false, irregular("Quart (UK)", "Quarts (UK)"), 1.13652, "qt (uk)", "imperial quart", "quart uk", "quarts uk", "imperial qt", "imp qt", "uk quart", "uk quarts", "uk qt"),
		linear(Volume, false, irregular("Pint (US)", "Pints (US)"), 0.473176, "pt", "pint", "pints", "us pint", "us pints", "us pt"),
		linear(Volume, false, irregular("Pint (UK)", "Pints (UK)"), 0.568261, "pt (uk)", "imperial pint", "pint uk", "pints uk", "imperial pt", "imp pt", "uk pint", "uk pints", "uk pt"),
		linear(Volume, false, irregular("Cup (US)", "Cups (US)"), 0.2365882365, "cup", "cups", "us cup", "us cups"),
		linear(Volume, false, irregular("Cup (UK)", "Cups (UK)"), 0.284130625, "cup (uk)", "imperial cup", "cup uk", "cups uk"),
		linear(Volume, false, irregular("Fluid Ounce (US)", "Fluid Ounces (US)"), 0.0295735, "fl oz", "fluid ounce", "fluid ounces", "us fluid ounce", "us fluid ounces", "us fl oz", "floz"),
		linear(Volume, false, irregular("Fluid Ounce (UK)", "Fluid Ounces (UK)"), 0.0284131, "fl oz (uk)", "imperial fluid ounce", "fluid ounce uk", "fluid ounces uk", "uk fluid ounce", "uk fluid ounces", "uk fl oz", "uk floz", "imp fl oz", "imp floz"),
		linear(Volume, false, irregular("Tablespoon (US)", "Tablespoons (US)"), 0.0147867648, "tbsp", "tablespoon", "tablespoons", "us tablespoon", "us tablespoons", "us tbsp"),
		linear(Volume, false, irregular("Tablespoon (UK)", "Tablespoons (UK)"), 0.0177581725, "tbsp (uk)", "imperial tablespoon", "tablespoon uk", "tablespoons uk", "uk tablespoon", "uk tablespoons", "uk tbsp", "imp tbsp"),
		linear(Volume, false, irregular("Teaspoon (US)", "Teaspoons (US)"), 0.00492892159, "tsp", "teaspoon", "teaspoons", "us teaspoon", "us teaspoons", "us tsp"),
		linear(Volume, false, irregular("Teaspoon (UK)", "Teaspoons (UK)"), 0.00591939013, "tsp (uk)", "imperial teaspoon", "teaspoon uk", "teaspoons uk", "uk teaspoon", "uk teaspoons", "uk tsp", "imp tsp"),

		linear(Time, true, suffixed("Second"), 1, "s", "sec", "second", "seconds"),
		linear(Time, false, suffixed("Minute"), 60, "min", "minute", "minutes"),
		linear(Time, false, suffixed("Hour"), 3600, "h", "hr", "hour", "hours"),
		linear(Time, false, suffixed("Day"), 86400, "d", "day", "days", "dy"),
		linear(Time, false, suffixed("Week"), 604800, "wk", "week", "weeks", "wks"),
		linear(Time, false, suffixed("Year"), 3.154e7, "yr", "year", "years", "yrs"),
		linear(Time, false, suffixed("Decade"), 3.154e8, "decade", "decades"),
		linear(Time, false, irregular("Century", "Centuries"), 3.154e9, "century", "centuries"),
		linear(Time, false, irregular("Millennium", "Millennia"), 3.154e10, "millennium", "millennia"),

		linear(Frequency, true, irregular("Hertz", "Hertz"), 1, "hz", "hertz"),

		linear(Data, true, suffixed("Bit"), 1, "b", "bit", "bits"),
		linear(Data, true, suffixed("Byte"), 8, "B", "byte", "bytes"),

		linear(Speed, true, irregular("Meter per second", "Meters per second"), 1, "m/s", "meters per second"),
		linear(Speed, true, irregular("Meter per hour", "Meters per hour"), 1.0/3600, "m/h", "meters per hour"),
		// Separate from m/h so the "kph" shorthand resolves without a prefix.
		linear(Speed, false, irregular("Kilometer per hour", "Kilometers per hour"), 0.2777777778, "kph"),
		linear(Speed, false, irregular("Mile per hour", "Miles per hour"), 0.44704, "mph", "miles per hour", "mi/h"),
		linear(Speed, false, suffixed("Knot"), 0.514444, "kn", "knot", "knots"),
		linear(Speed, false, irregular("Foot per second", "Feet per second"), 0.3048, "ft/s", "feet per second", "fps"),
		linear(Speed, false, symbol("c (Light Speed)"), 299792458, "c", "light speed"),

		linear(Torque, true, suffixed("Newton-meter"), 1, "N·m", "Nm", "newton meter", "newton meters", "newton-meter", "newton-meters", "newton metre", "newton metres", "newton-metre", "newton-metres"),
		linear(Torque, false, irregular("Pound-foot", "Pound-feet"), 1.35582, "lb·ft", "lbf·ft", "pound-foot", "pound-feet"),

		linear(Pressure, true, suffixed("Pascal"), 1, "pa", "pascal", "pascals"),
		linear(Pressure, true, suffixed("Bar"), 100000, "bar", "bars"),
		linear(Pressure, false, symbol("PSI"), 6894.76, "psi", "pound per square inch", "pounds per square inch", "pound/sq inch", "pounds/sq inch", "pound/inch²", "pounds/inch²", "pound/inch2", "pounds/inch2", "pound/inch^2", "pounds/inch^2"),
		linear(Pressure, false, suffixed("Atmosphere"), 101325, "atm", "atms", "atmosphere", "atmospheres", "standard atmosphere", "standard atmospheres", "std atm", "std atms", "std atmosphere", "std atmospheres", "standard atm", "standard atms"),
		linear(Pressure, false, irregular("Torr", "Torr"), 133.322, "torr"),
		linear(Pressure, false, irregular("Millimeter of mercury", "Millimeters of mercury"), 133.322, "mmhg", "mm hg", "millimeter of mercury", "millimeters of mercury"),
		linear(Pressure, false, irregular("Inch of mercury", "Inches of mercury"), 3386.39, "inhg", "in hg", "inch of mercury", "inches of mercury", "hg"),
		linear(Pressure, false, irregular("Inch of water", "Inches of water"), 249.08891, "inh2O", "in h2O", "inch of water", "inches of water"),
		linear(Pressure, false, irregular("Kilopound per square inch", "Kilopounds per square inch"), 6894757.29, "ksi", "kilopound per square inch", "kilopounds per square inch", "kpsi"),

		linear(Force, true, suffixed("Newton"), 1, "n", "newton", "newtons"),
		linear(Force, false, irregular("Pound-force", "Pound-force"), 4.44822, "lbf", "pound-force", "pound forces", "pound force"),
		linear(Force, false, irregular("Kilogram-force", "Kilogram-force"), 9.80665, "kgf", "kilogram-force", "kilograms-force", "kilogram forces"),

		linear(Voltage, true, suffixed("Volt"), 1, "v", "volt", "volts"),

		linear(Current, true, suffixed("Amp"), 1, "a", "amp", "ampere", "amperes", "amps"),

		linear(Power, true, suffixed("Watt"), 1, "w", "watt", "watts", "joule per second", "joules per second", "j/s"),
		linear(Power, false, irregular("Horsepower", "Horsepower"), 745.7, "hp", "horsepower", "horse power", "horse-power"),
		linear(Power, false, irregular("BTU per hour", "BTUs per hour"), 0.29307107, "btu/h", "btu per hour", "btu/hr"),
		linear(Power, false, irregular("BTU per minute", "BTUs per minute"), 17.5842667, "btu/m", "btu/min", "btu per minute"),
		linear(Power, false, irregular("BTU per second", "BTUs per second"), 1055.05585, "btu/s", "btu per second", "btu/sec"),
		linear(Power, false, irregular("Pferdestärke", "Pferdestärken"), 735.49875, "ps", "pferdestärke", "pferdestärken", "metric horsepower", "metric hp"),

		linear(Energy, true, suffixed("Joule"), 1, "j", "joule", "joules"),
		linear(Energy, false, suffixed("Calorie"), 4.184, "cal", "calorie", "calories"),
		linear(Energy, false, suffixed("Kilocalorie"), 4184, "kcal", "kilocalorie", "kilocalories"),
		linear(Energy, true, suffixed("Watt-hour"), 3600, "wh", "watt hour", "watt hours", "watt-hour", "watt-hours"),

		linear(Angle, true, suffixed("Degree"), 1, "deg", "degree", "degrees", "°"),
		linear(Angle, false, suffixed("Radian"), 180/math.Pi, "rad", "radian", "radians"),
		linear(Angle, false, suffixed("Gradian"), 0.9, "grad", "gradians"),
		linear(Angle, false, suffixed("Arcminute"), 1.0/60, "arcmin", "arcminute", "arcminutes"),
		linear(Angle, false, suffixed("Arcsecond"), 1.0/3600, "arcsec", "arcsecond", "arcseconds"),

		linear(Acceleration, true, irregular("Meter per second squared", "Meters per second squared"), 1, "m/s²", "m/s2", "m/s^2", "meter per second squared", "meters per second squared"),
		linear(Acceleration, false, irregular("Standard gravity", "Standard gravities"), 9.80665, "g", "standard gravity", "standard gravities"),
	}
}

// defaultPrefixes lists SI and binary magnitude prefixes. Each decimal prefix is followed by its
// binary counterpart where one exists.
func defaultPrefixes() []MetricPrefix {
	return []MetricPrefix{
		{DisplayName: "Peta", Aliases: []string{"peta", "P"}, Value: 1e15},
		{DisplayName: "Pebi", Aliases: []string{"pebi", "Pi"}, Value: math.Pow(1024, 5)},
		{DisplayName: "Tera", Aliases: []string{"tera", "T"}, Value: 1e12},
		{DisplayName: "Tebi", Aliases: []string{"tebi", "Ti"}, Value: math.Pow(1024, 4)},
		{DisplayName: "Giga", Aliases: []string{"giga", "G"}, Value: 1e9},
		{DisplayName: "Gibi", Aliases: []string{"gibi", "Gi"}, Value: math.Pow(1024, 3)},
		{DisplayName: "Mega", Aliases: []string{"mega", "M"}, Value: 1e6},
		{DisplayName: "Mebi", Aliases: []string{"mebi", "Mi"}, Value: math.Pow(1024, 2)},
		{DisplayName: "Kilo", Aliases: []string{"kilo", "k"}, Value: 1e3},
		{DisplayName: "Kibi", Aliases: []string{"kibi", "Ki"}, Value: 1024},
		{DisplayName: "Hecto", Aliases: []string{"hecto", "h"}, Value: 1e2},
		{DisplayName: "Deca", Aliases: []string{"deca", "da"}, Value: 1e1},
		{DisplayName: "Deci", Aliases: []string{"deci", "d"}, Value: 1e-1},
		{DisplayName: "Centi", Aliases: []string{"centi", "c"}, Value: 1e-2},
		{DisplayName: "Milli", Aliases: []string{"milli", "m"}, Value: 1e-3},
		{DisplayName: "Micro", Aliases: []string{"micro", "μ"}, Value: 1e-6},
		{DisplayName: "Nano", Aliases: []string{"nano", "n"}, Value: 1e-9},
		{DisplayName: "Pico", Aliases: []string{"pico", "p"}, Value: 1e-12},
	}
}

// NewDefaultRegistry builds a Registry from the built-in catalog.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(defaultUnits(), defaultPrefixes())
	if err != nil {
		// The built-in tables are covered by tests; failing here is a programming error.
		panic(err)
	}
	return r
}
