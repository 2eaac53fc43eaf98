package fnsmetadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zkfairdomains/fns-metadata/common"
	"github.com/zkfairdomains/fns-metadata/image"
	"github.com/zkfairdomains/fns-metadata/schema"
)

func (s *Server) registerRoutes(r *gin.Engine) {
	r.Use(common.CORSMiddleware(), common.RequestIDMiddleware())
	if s.cfg.RateLimit > 0 {
		r.Use(common.LimiterMiddleware(s.cfg.RateLimit, s.cfg.RateLimitPeriod, s.cfg.IpRateWhitelist))
	}
	r.GET("/health", s.health)
	r.GET("/:networkName/:contractAddress/:tokenId", s.getMetadata)
	r.GET("/:networkName/:contractAddress/:tokenId/image", s.getImage)
}

func (s *Server) runAPI(port string) {
	if err := s.engine.Run(port); err != nil {
		panic(err)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestFrom(c *gin.Context) Request {
	return Request{
		Network:  c.Param("networkName"),
		Contract: c.Param("contractAddress"),
		TokenId:  c.Param("tokenId"),
	}
}

func (s *Server) getMetadata(c *gin.Context) {
	req := requestFrom(c)
	s.resolveAndRespond(c, req, func(w *responder, res *Resolution) {
		meta := schema.NewMetadata(res.Record, s.cfg.AppURL, res.LastRequestDate)
		// placeholders carry no image
		if res.Record.Placeholder {
			w.JSON(http.StatusOK, schema.RespUnknown{Message: meta})
			return
		}

		img, err := s.formatter.Format(res.Record, s.cfg.InlineImages)
		if err != nil {
			log.Warn("render inline image failed, falling back to url", "name", res.Record.Name, "err", err)
		}
		if img != nil {
			meta.SetImage(img.DataURI())
		} else {
			meta.SetImageURL(s.imageURL(req, res))
		}
		w.JSON(http.StatusOK, meta)
	})
}

func (s *Server) getImage(c *gin.Context) {
	s.resolveAndRespond(c, requestFrom(c), func(w *responder, res *Resolution) {
		svg, err := s.formatter.SVG(res.Record)
		if err != nil {
			log.Error("render image failed", "name", res.Record.Name, "err", err)
			w.JSON(http.StatusNotFound, schema.RespErr{Message: schema.MsgNoResultsFound})
			return
		}
		w.Data(http.StatusOK, image.MimeTypeSVG, svg)
	})
}

func (s *Server) imageURL(req Request, res *Resolution) string {
	return fmt.Sprintf("%s/%s/%s/%s/image", s.cfg.ServerURL, res.Network.Name, req.Contract, res.TokenID.Hex)
}

type resolveResult struct {
	res *Resolution
	err error
}

// resolveAndRespond races the resolution against the request timeout. The resolution
// goroutine never touches the gin context; a late result lands in the buffered
// channel and is dropped.
func (s *Server) resolveAndRespond(c *gin.Context, req Request, render func(w *responder, res *Resolution)) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.Timeout)
	defer cancel()
	w := newResponder(c)

	done := make(chan resolveResult, 1)
	go func() {
		res, err := s.resolver.Resolve(ctx, req)
		done <- resolveResult{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		s.abort(w, req, ctx.Err())
	case out := <-done:
		if ctx.Err() != nil {
			// the lookups most likely failed because the deadline hit
			s.abort(w, req, ctx.Err())
			return
		}
		if out.err != nil {
			s.fail(w, req, out.err)
			return
		}
		render(w, out.res)
	}
}

func (s *Server) abort(w *responder, req Request, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn("resolve timeout", "network", req.Network, "tokenId", req.TokenId)
		w.JSON(http.StatusGatewayTimeout, schema.RespErr{Message: schema.MsgTimeout})
		return
	}
	log.Debug("client went away", "network", req.Network, "tokenId", req.TokenId, "err", err)
}

func (s *Server) fail(w *responder, req Request, err error) {
	code, msg := schema.Outcome(err)
	if schema.KindOf(err) == schema.KindUnknown {
		log.Error("unexpected resolve error", "network", req.Network, "tokenId", req.TokenId, "err", err)
	} else {
		log.Debug("resolve failed", "network", req.Network, "tokenId", req.TokenId, "err", err)
	}
	w.JSON(code, schema.RespErr{Message: msg})
}
