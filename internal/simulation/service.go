package simulation

import (
	"errors"
	"strings"
	"time"

	"mundebate-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDuplicateName    = errors.New("ya existe un modelo con ese nombre")
	ErrMissingOrgans    = errors.New("el nombre del modelo y al menos un órgano son obligatorios")
	ErrNotFound         = errors.New("modelo no encontrado")
	ErrEmptyOrganName   = errors.New("todos los órganos deben tener nombre")
	ErrEmptyCountryName = errors.New("todos los países deben tener nombre")
)

type CountrySpec struct {
	Name    string `json:"name"`
	ISOCode string `json:"iso_code"`
}

type OrganSpec struct {
	Name      string        `json:"name"`
	Countries []CountrySpec `json:"countries"`
}

type OrganView struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Countries []models.Country `json:"countries"`
}

type ModelView struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
	Organs    []OrganView `json:"organs"`
}

// CreateModel da de alta un modelo completo: crea los órganos y países que no
// existan, y asocia todo de forma idempotente. Devuelve el modelo hidratado
// leído de vuelta tras las escrituras.
func CreateModel(db *gorm.DB, name string, organSpecs []OrganSpec) (*ModelView, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(organSpecs) == 0 {
		return nil, ErrMissingOrgans
	}

	var count int64
	if err := db.Model(&models.Model{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	model := models.Model{Name: name}
	if err := db.Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	for _, organSpec := range organSpecs {
		organ, err := findOrCreateOrgan(db, organSpec.Name)
		if err != nil {
			return nil, err
		}

		if err := associate(db, &models.ModelOrgan{ModelID: model.ID, OrganID: organ.ID}); err != nil {
			return nil, err
		}

		for _, countrySpec := range organSpec.Countries {
			country, err := findOrCreateCountry(db, countrySpec)
			if err != nil {
				return nil, err
			}
			if err := associate(db, &models.OrganCountry{OrganID: organ.ID, CountryID: country.ID}); err != nil {
				return nil, err
			}
		}
	}

	return GetModel(db, model.ID)
}

// findOrCreateOrgan busca el órgano por nombre y lo crea si no existe. Si otra
// petición concurrente lo crea primero, la violación de unicidad se resuelve
// releyendo.
func findOrCreateOrgan(db *gorm.DB, name string) (*models.Organ, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyOrganName
	}

	var organ models.Organ
	err := db.Where("name = ?", name).First(&organ).Error
	if err == nil {
		return &organ, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	organ = models.Organ{Name: name}
	if err := db.Create(&organ).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("name = ?", name).First(&organ).Error; err != nil {
				return nil, err
			}
			return &organ, nil
		}
		return nil, err
	}
	return &organ, nil
}

func findOrCreateCountry(db *gorm.DB, spec CountrySpec) (*models.Country, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrEmptyCountryName
	}

	var country models.Country
	err := db.Where("name = ?", name).First(&country).Error
	if err == nil {
		return &country, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	isoCode := strings.TrimSpace(spec.ISOCode)
	if isoCode == "" {
		// Sin código explícito se deriva de las dos primeras letras del
		// nombre. Es un mejor-esfuerzo, no una búsqueda ISO 3166 real.
		isoCode = deriveISOCode(name)
	}

	country = models.Country{Name: name, ISOCode: isoCode}
	if err := db.Create(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("iso_code = ?", isoCode).First(&country).Error; err != nil {
				return nil, err
			}
			return &country, nil
		}
		return nil, err
	}
	return &country, nil
}

func deriveISOCode(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// associate crea la fila de asociación si no existe ya.
func associate(db *gorm.DB, assoc interface{}) error {
	err := db.Create(assoc).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

func GetModel(db *gorm.DB, id uint) (*ModelView, error) {
	var model models.Model
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hydrate(db, &model)
}

// ListModels devuelve los modelos hidratados, el más reciente primero.
func ListModels(db *gorm.DB) ([]ModelView, error) {
	var list []models.Model
	if err := db.Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}

	views := make([]ModelView, 0, len(list))
	for i := range list {
		view, err := hydrate(db, &list[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// DeleteModel borra el modelo y sus asociaciones modelo-órgano. Los órganos,
// países y registros existen por fuera del modelo y no se tocan.
func DeleteModel(db *gorm.DB, id uint) error {
	var model models.Model
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("model_id = ?", id).Delete(&models.ModelOrgan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model).Error
	})
}

func hydrate(db *gorm.DB, model *models.Model) (*ModelView, error) {
	var organs []models.Organ
	err := db.
		Select("organs.*").
		Joins("JOIN model_organs mo ON mo.organ_id = organs.id").
		Where("mo.model_id = ?", model.ID).
		Order("organs.id asc").
		Find(&organs).Error
	if err != nil {
		return nil, err
	}

	view := &ModelView{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		Organs:    make([]OrganView, 0, len(organs)),
	}

	for _, organ := range organs {
		countries, err := organCountries(db, organ.ID)
		if err != nil {
			return nil, err
		}
		view.Organs = append(view.Organs, OrganView{
			ID:        organ.ID,
			Name:      organ.Name,
			Countries: countries,
		})
	}
	return view, nil
}

func organCountries(db *gorm.DB, organID uint) ([]models.Country, error) {
	countries := make([]models.Country, 0)
	err := db.
		Select("countries.*").
		Joins("JOIN organ_countries oc ON oc.country_id = countries.id").
		Where("oc.organ_id = ?", organID).
		Order("countries.id asc").
		Find(&countries).Error
	return countries, err
}

// ListOrgans devuelve todos los órganos con sus países, sin filtrar por modelo.
func ListOrgans(db *gorm.DB) ([]OrganView, error) {
	var organs []models.Organ
	if err := db.Order("id asc").Find(&organs).Error; err != nil {
		return nil, err
	}

	views := make([]OrganView, 0, len(organs))
	for _, organ := range organs {
		countries, err := organCountries(db, organ.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, OrganView{ID: organ.ID, Name: organ.Name, Countries: countries})
	}
	return views, nil
}
