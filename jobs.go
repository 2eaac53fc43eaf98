package fnsmetadata

import (
	"context"
)

func (s *Server) runJobs() {
	if _, err := s.scheduler.Every(s.cfg.IndexLagInterval).Seconds().SingletonMode().Do(s.probeIndexLag); err != nil {
		log.Error("schedule index lag probe", "err", err)
		return
	}
	s.scheduler.StartAsync()
}

// probeIndexLag only feeds metrics. Resolution never reads its results.
func (s *Server) probeIndexLag() {
	for _, n := range s.networks.All() {
		if !n.HasIndex || n.Chain == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
		indexed, err := s.indexer.IndexedBlock(ctx, n.IndexURL)
		if err != nil {
			cancel()
			log.Warn("probe indexed block failed", "network", n.Name, "err", err)
			continue
		}
		head, err := n.Chain.BlockNumber(ctx)
		cancel()
		if err != nil {
			log.Warn("probe chain head failed", "network", n.Name, "err", err)
			continue
		}
		metricIndexLag(n.Name, head, indexed)
	}
}
