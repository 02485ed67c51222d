package harvest

import (
	"context"
	"errors"
	"fmt"

	"skin-catalog/core/models"
	"skin-catalog/core/pacer"

	"go.uber.org/zap"
)

// ErrEmptyHarvest means the listing produced no usable skins at all.
var ErrEmptyHarvest = errors.New("harvest returned no skins")

// Result is the outcome of one harvest run.
type Result struct {
	// Skins are the normalized skins in listing order.
	Skins []models.HarvestedSkin
	// Diagnostics are the items that were skipped.
	Diagnostics []models.Diagnostic
	// Links is the number of item anchors found on the listing page.
	Links int
	// NotCostume is the number of anchors that were not costume pages.
	NotCostume int
}

// Harvester scrapes the listing page and every costume detail page it links to.
type Harvester struct {
	fetcher    Fetcher
	normalizer *Normalizer
	pacer      *pacer.Pacer
	baseURL    string
	listingURL string
	logger     *zap.Logger
}

// NewHarvester creates a harvester.
func NewHarvester(cfg Config, fetcher Fetcher, normalizer *Normalizer, p *pacer.Pacer, logger *zap.Logger) (*Harvester, error) {
	listing, err := cfg.ListingURL()
	if err != nil {
		return nil, fmt.Errorf("invalid listing url: %w", err)
	}
	return &Harvester{
		fetcher:    fetcher,
		normalizer: normalizer,
		pacer:      p,
		baseURL:    cfg.BaseURL,
		listingURL: listing,
		logger:     logger,
	}, nil
}

// Run fetches the listing and each detail page in order.
// A listing failure, a cancelled context, or zero skins abort the run.
// Per-item failures become diagnostics.
func (h *Harvester) Run(ctx context.Context) (*Result, error) {
	h.logger.Info("Fetching listing", zap.String("url", h.listingURL))

	page, err := h.fetcher.Fetch(ctx, h.listingURL)
	if err != nil {
		return nil, &FetchError{Stage: "listing", URL: h.listingURL, Err: err}
	}

	anchors, err := ParseListing(page)
	if err != nil {
		return nil, &FetchError{Stage: "listing", URL: h.listingURL, Err: err}
	}

	res := &Result{Links: len(anchors)}
	for _, a := range anchors {
		link, err := ParseLink(a.Text, a.Href)
		if err != nil {
			res.NotCostume++
			continue
		}

		detailURL, err := ResolveURL(h.baseURL, link.Href)
		if err != nil {
			h.skip(res, models.Diagnostic{
				Kind:      models.KindFetchFailed,
				Character: h.normalizer.Tables().CharacterName(link.Slug),
				Skin:      h.normalizer.SkinName(link),
				URL:       link.Href,
				Message:   err.Error(),
			})
			continue
		}

		if err := h.pacer.Wait(ctx); err != nil {
			return nil, err
		}

		detail, err := h.fetcher.Fetch(ctx, detailURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			ferr := &FetchError{Stage: "detail", URL: detailURL, Err: err}
			h.skip(res, models.Diagnostic{
				Kind:      models.KindFetchFailed,
				Character: h.normalizer.Tables().CharacterName(link.Slug),
				Skin:      h.normalizer.SkinName(link),
				URL:       detailURL,
				Message:   ferr.Error(),
			})
			continue
		}

		skin, err := h.normalizer.Normalize(link, detail, detailURL)
		if err != nil {
			kind := models.KindSkinIDNotFound
			if errors.Is(err, ErrNoCharacterID) {
				kind = models.KindNoCharacterID
			}
			h.skip(res, models.Diagnostic{
				Kind:      kind,
				Character: skin.CharacterName,
				Skin:      skin.SkinName,
				URL:       detailURL,
				Message:   err.Error(),
			})
			continue
		}

		h.logger.Debug("Harvested skin",
			zap.String("character", skin.CharacterName),
			zap.String("skin", skin.SkinName),
			zap.String("skin_id", skin.SkinID),
		)
		res.Skins = append(res.Skins, skin)
	}

	h.logger.Info("Harvest finished",
		zap.Int("links", res.Links),
		zap.Int("not_costume", res.NotCostume),
		zap.Int("skins", len(res.Skins)),
		zap.Int("skipped", len(res.Diagnostics)),
	)

	if len(res.Skins) == 0 {
		return res, ErrEmptyHarvest
	}
	return res, nil
}

func (h *Harvester) skip(res *Result, d models.Diagnostic) {
	h.logger.Warn("Skipping item",
		zap.String("reason", string(d.Kind)),
		zap.String("character", d.Character),
		zap.String("skin", d.Skin),
		zap.String("url", d.URL),
		zap.String("error", d.Message),
	)
	res.Diagnostics = append(res.Diagnostics, d)
}
