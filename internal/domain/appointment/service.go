package appointment

// ===============================
// Services
// ===============================

const (
	ServiceHaircut         = "Corte de cabelo"
	ServiceBeard           = "Barba"
	ServiceHaircutAndBeard = "Corte + Barba"
	ServiceEyebrow         = "Sobrancelha"
	ServiceMustache        = "Bigode"
	ServiceWash            = "Lavagem"
)

var services = []string{
	ServiceHaircut,
	ServiceBeard,
	ServiceHaircutAndBeard,
	ServiceEyebrow,
	ServiceMustache,
	ServiceWash,
}

func DefaultService() string {
	return ServiceHaircut
}

func IsValidService(s string) bool {
	for _, v := range services {
		if v == s {
			return true
		}
	}
	return false
}
