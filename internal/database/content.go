package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/vyakarana/internal/entities"
)

// ReplaceVocabulary swaps the stored glossary for entries.
func (d *Database) ReplaceVocabulary(entries []entities.VocabularyEntry) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, entries); err != nil {
			return fmt.Errorf("replace vocabulary: %w", err)
		}
		return nil
	})
}

// ListVocabulary returns published glossary entries in CMS order. Collation
// order is applied by the caller.
func (d *Database) ListVocabulary() ([]entities.VocabularyEntry, error) {
	var entries []entities.VocabularyEntry
	err := publishedInOrder(d.DB).Find(&entries).Error
	return entries, err
}

// ReplaceSutras swaps the stored Aṣṭādhyāyī rules for sutras.
func (d *Database) ReplaceSutras(sutras []entities.Sutra) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, sutras); err != nil {
			return fmt.Errorf("replace sutras: %w", err)
		}
		return nil
	})
}

func (d *Database) ListSutras() ([]entities.Sutra, error) {
	var sutras []entities.Sutra
	err := publishedInOrder(d.DB).Find(&sutras).Error
	return sutras, err
}

// GetSutraByNumber looks a sutra up by its "chapter.section.sutra" number.
func (d *Database) GetSutraByNumber(number string) (*entities.Sutra, error) {
	var sutra entities.Sutra
	err := publishedInOrder(d.DB).Where("number = ?", number).First(&sutra).Error
	if err != nil {
		return nil, err
	}
	return &sutra, nil
}

func (d *Database) ReplacePratisakhyaSutras(sutras []entities.PratisakhyaSutra) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, sutras); err != nil {
			return fmt.Errorf("replace pratisakhya sutras: %w", err)
		}
		return nil
	})
}

func (d *Database) ListPratisakhyaSutras() ([]entities.PratisakhyaSutra, error) {
	var sutras []entities.PratisakhyaSutra
	err := publishedInOrder(d.DB).Find(&sutras).Error
	return sutras, err
}

func (d *Database) GetPratisakhyaSutraByNumber(number string) (*entities.PratisakhyaSutra, error) {
	var sutra entities.PratisakhyaSutra
	err := publishedInOrder(d.DB).Where("number = ?", number).First(&sutra).Error
	if err != nil {
		return nil, err
	}
	return &sutra, nil
}

// ReplaceShabdas swaps the stored paradigms and their declension rows.
// Declension row IDs are reassigned locally; the CMS order of rows is kept
// in Position.
func (d *Database) ReplaceShabdas(shabdas []entities.Shabda) error {
	rows := make([]entities.Shabda, len(shabdas))
	for i, s := range shabdas {
		rows[i] = s
		rows[i].Declensions = make([]entities.Declension, len(s.Declensions))
		for j, decl := range s.Declensions {
			decl.ID = 0
			decl.ShabdaID = s.ID
			decl.Position = j
			rows[i].Declensions[j] = decl
		}
	}

	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := replaceAll[entities.Declension](tx, nil); err != nil {
			return fmt.Errorf("clear declensions: %w", err)
		}
		if err := replaceAll(tx, rows); err != nil {
			return fmt.Errorf("replace shabdas: %w", err)
		}
		return nil
	})
}

func preloadDeclensions(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Declensions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (d *Database) ListShabdas() ([]entities.Shabda, error) {
	var shabdas []entities.Shabda
	err := preloadDeclensions(publishedInOrder(d.DB)).Find(&shabdas).Error
	return shabdas, err
}

func (d *Database) GetShabda(id uint) (*entities.Shabda, error) {
	var shabda entities.Shabda
	err := preloadDeclensions(publishedInOrder(d.DB)).Where("id = ?", id).First(&shabda).Error
	if err != nil {
		return nil, err
	}
	return &shabda, nil
}

func (d *Database) GetShabdaByIndex(orderIndex int) (*entities.Shabda, error) {
	var shabda entities.Shabda
	err := preloadDeclensions(publishedInOrder(d.DB)).Where("order_index = ?", orderIndex).First(&shabda).Error
	if err != nil {
		return nil, err
	}
	return &shabda, nil
}
