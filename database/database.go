package database

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/notifier"
)

type Database struct {
	store          *store
	projectRepo    *ProjectRepo
	experienceRepo *ExperienceRepo
	skillRepo      *SkillRepo
	messageRepo    *MessageRepo
	metadataRepo   *MetadataRepo
	cvRepo         *CVRepo
	sessionRepo    *SessionRepo
}

type Option func(*store)

// WithClock replaces time.Now for identities and message timestamps
func WithClock(now func() time.Time) Option {
	return func(s *store) {
		s.now = now
	}
}

// WithKeyPrefix namespaces every slot, e.g. "portfolio:" on a shared Redis
func WithKeyPrefix(prefix string) Option {
	return func(s *store) {
		s.prefix = prefix
	}
}

// New initializes a Database whose repositories share one backend and one notifier
func New(backend Backend, n *notifier.Notifier, opts ...Option) Database {
	s := &store{
		backend:  backend,
		notifier: n,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return Database{
		store:          s,
		projectRepo:    NewProjectRepo(s),
		experienceRepo: NewExperienceRepo(s),
		skillRepo:      NewSkillRepo(s),
		messageRepo:    NewMessageRepo(s),
		metadataRepo:   NewMetadataRepo(s),
		cvRepo:         NewCVRepo(s),
		sessionRepo:    NewSessionRepo(s),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

func (d Database) MetadataRepo() *MetadataRepo {
	return d.metadataRepo
}

func (d Database) CVRepo() *CVRepo {
	return d.cvRepo
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

func (d Database) Notifier() *notifier.Notifier {
	return d.store.notifier
}

// Init writes the default content unless the stored seed version is already
// SeedVersion or newer. It reports whether it seeded and is safe to call on
// every start.
func (d Database) Init() (seeded bool, err error) {
	s := d.store
	err = s.mutate(func() error {
		raw, found, err := s.backend.Get(s.key(KeySeedVersion))
		if err != nil {
			return errs.NewStorageReadFaultError(KeySeedVersion, err)
		}
		if found {
			stored, perr := strconv.Atoi(strings.TrimSpace(raw))
			if perr == nil && stored >= SeedVersion {
				if stored > SeedVersion {
					log.Warn().Int("stored", stored).Int("known", SeedVersion).Msg("Store was seeded by a newer release, leaving it alone")
				}
				return errUnchanged
			}
			log.Info().Str("stored", raw).Int("target", SeedVersion).Msg("Seed version outdated, re-seeding")
		}

		if err := writeList(s, KeyProjects, DefaultProjects()); err != nil {
			return err
		}
		if err := writeList(s, KeyExperiences, []models.Experience{}); err != nil {
			return err
		}
		if err := writeList(s, KeyMessages, []models.ContactSubmission{}); err != nil {
			return err
		}
		if err := writeList(s, KeySkills, DefaultSkills()); err != nil {
			return err
		}
		meta := DefaultMetadata()
		meta.HeroImageURL = seededHeroImageURL
		if err := writeValue(s, KeyMetadata, meta); err != nil {
			return err
		}
		// marker last, so a failed seed is retried on the next start
		if err := s.backend.Set(s.key(KeySeedVersion), strconv.Itoa(SeedVersion)); err != nil {
			return errs.NewStorageFaultError(KeySeedVersion, err)
		}
		seeded = true
		return nil
	})
	if seeded {
		log.Info().Int("version", SeedVersion).Msg("Seeded default portfolio content")
	}
	return seeded, err
}
