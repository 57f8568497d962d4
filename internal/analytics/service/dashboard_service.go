/*
 * Copyright (c) 2025, HireWise, Inc. (https://hirewise.io).
 *
 * HireWise, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/analytics/store"
	"github.com/hirewise/recruiting-data-service/internal/system/cache"
	"github.com/hirewise/recruiting-data-service/internal/system/config"
)

type DashboardServiceInterface interface {
	GetDashboard(windowSecs int64) (*model.Dashboard, error)
}

// DashboardService serves the aggregate metrics view, caching snapshots for
// the configured TTL.
type DashboardService struct{}

var (
	dashboardCache     *cache.Cache
	dashboardCacheOnce sync.Once
)

// GetDashboardService creates a new instance of DashboardService.
func GetDashboardService() DashboardServiceInterface {

	return &DashboardService{}
}

func getDashboardCache() *cache.Cache {
	dashboardCacheOnce.Do(func() {
		ttlSecs := config.GetRDSRuntime().Config.Dashboard.CacheTTLSecs
		if ttlSecs <= 0 {
			ttlSecs = 30
		}
		dashboardCache = cache.NewCache(time.Duration(ttlSecs) * time.Second)
	})
	return dashboardCache
}

// GetDashboard returns the per type/category event totals for the window.
func (ds *DashboardService) GetDashboard(windowSecs int64) (*model.Dashboard, error) {

	cacheKey := fmt.Sprintf("dashboard:%d", windowSecs)
	if cached, found := getDashboardCache().Get(cacheKey); found {
		if dashboard, ok := cached.(*model.Dashboard); ok {
			return dashboard, nil
		}
	}

	now := time.Now().UTC().Unix()
	buckets, total, err := store.FetchRollups(now - windowSecs)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		WindowSecs:  windowSecs,
		TotalEvents: total,
		Buckets:     buckets,
		GeneratedAt: now,
	}
	getDashboardCache().Set(cacheKey, dashboard)
	return dashboard, nil
}
