package domain

// Category группа услуг салона
type Category string

const (
	CategoryWomen Category = "women"
	CategoryMen   Category = "men"
)

// IsValid returns true if the category is known
func (c Category) IsValid() bool {
	return c == CategoryWomen || c == CategoryMen
}

// ServiceCode код услуги из фиксированного каталога
type ServiceCode string

const (
	ServiceWomenHaircut  ServiceCode = "w_haircut"
	ServiceWomenColoring ServiceCode = "w_coloring"
	ServiceMenHaircut    ServiceCode = "m_haircut"
	ServiceMenBarber     ServiceCode = "m_barber"
)

// serviceLabels отображаемые названия услуг
var serviceLabels = map[ServiceCode]string{
	ServiceWomenHaircut:  "Женская Стрижка",
	ServiceWomenColoring: "Женское Окрашивание",
	ServiceMenHaircut:    "Мужская Стрижка",
	ServiceMenBarber:     "Мужские Барберские Услуги и Борода",
}

// categoryServices услуги по категориям, в порядке показа
var categoryServices = map[Category][]ServiceCode{
	CategoryWomen: {ServiceWomenHaircut, ServiceWomenColoring},
	CategoryMen:   {ServiceMenHaircut, ServiceMenBarber},
}

// Label возвращает отображаемое название услуги
func (s ServiceCode) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return "Unknown service"
}

// IsValid returns true if the service code is in the catalog
func (s ServiceCode) IsValid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Category возвращает категорию, к которой относится услуга
func (s ServiceCode) Category() Category {
	switch s {
	case ServiceWomenHaircut, ServiceWomenColoring:
		return CategoryWomen
	case ServiceMenHaircut, ServiceMenBarber:
		return CategoryMen
	default:
		return ""
	}
}

// ServicesByCategory возвращает услуги категории в порядке показа
func ServicesByCategory(c Category) []ServiceCode {
	return categoryServices[c]
}
