// Rules service: serves validation-rule descriptors for catalog variables,
// memoized per code. Catalog change events invalidate the cache so form
// builders always see rules for the current record.
package service

import (
	"context"
	"encoding/json"
	"time"

	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/pkg/logger"
	"valuation-catalog-be/internal/repository/unitofwork"
	"valuation-catalog-be/pkg/rules"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
)

type IRulesService interface {
	DescriptorFor(ctx context.Context, code string) (*rules.Descriptor, error)
	// ListenInvalidations consumes catalog change events until ctx is done.
	ListenInvalidations(ctx context.Context) error
}

type rulesService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	pubSub     *gochannel.GoChannel
	topicName  string
	logger     logger.ILogger
}

func NewRulesService(
	uowFactory unitofwork.RepositoryFactory,
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IRulesService {
	return &rulesService{
		uowFactory: uowFactory,
		cache:      cache.New(15*time.Minute, 30*time.Minute),
		pubSub:     pubSub,
		topicName:  topicName,
		logger:     log,
	}
}

func (s *rulesService) DescriptorFor(ctx context.Context, code string) (*rules.Descriptor, error) {
	if cached, found := s.cache.Get(code); found {
		d := cached.(rules.Descriptor)
		return detachDescriptor(d), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	variable, err := uow.VariableRepository().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if variable == nil {
		return nil, entity.ErrNotFound
	}

	d := rules.Derive(variable)
	s.cache.Set(code, d, cache.DefaultExpiration)
	return detachDescriptor(d), nil
}

// detachDescriptor copies the choices slice so callers never share a backing
// array with the cached entry.
func detachDescriptor(d rules.Descriptor) *rules.Descriptor {
	if len(d.Choices) > 0 {
		d.Choices = append([]rules.Choice(nil), d.Choices...)
	}
	return &d
}

func (s *rulesService) ListenInvalidations(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var evt CatalogEvent
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				s.logger.Warn("rules", "dropping malformed catalog event", map[string]interface{}{
					"error": err.Error(),
				})
				msg.Ack()
				continue
			}
			s.cache.Delete(evt.Code)
			msg.Ack()
		}
	}()

	return nil
}
