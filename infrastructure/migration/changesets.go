package migration

// ChangeSet is one ordered schema revision. Forward and Reverse each run in a
// single transaction; Predecessor must match the current version before a
// change-set is applied.
type ChangeSet struct {
	Version     int
	Predecessor int
	Description string
	Forward     []string
	Reverse     []string
}

// ChangeSets is the full ordered history. Constraint and index names are part
// of the external interface consumed by downstream reporting tools and must
// not be renamed.
var ChangeSets = []ChangeSet{
	{
		Version:     1,
		Predecessor: 0,
		Description: "create users table",
		Forward: []string{
			`CREATE TABLE users (
				id SERIAL PRIMARY KEY,
				email TEXT NOT NULL,
				hashed_password TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT now(),
				updated_at TIMESTAMP NOT NULL DEFAULT now(),
				CONSTRAINT users_email_key UNIQUE (email)
			)`,
		},
		Reverse: []string{
			`DROP TABLE users`,
		},
	},
	{
		Version:     2,
		Predecessor: 1,
		Description: "create marketing warehouse schema",
		Forward: []string{
			`CREATE TABLE dim_platform (
				platform_id SERIAL,
				name TEXT NOT NULL,
				CONSTRAINT dim_platform_pkey PRIMARY KEY (platform_id),
				CONSTRAINT dim_platform_name_key UNIQUE (name)
			)`,
			`CREATE TABLE dim_dma (
				dma_id SERIAL,
				dma_code TEXT NOT NULL,
				dma_name TEXT NOT NULL,
				CONSTRAINT dim_dma_pkey PRIMARY KEY (dma_id),
				CONSTRAINT dim_dma_dma_code_key UNIQUE (dma_code)
			)`,
			`CREATE TABLE map_platform_dma (
				id SERIAL,
				platform_id INTEGER NOT NULL,
				platform_dma_label TEXT NOT NULL,
				dma_id INTEGER NOT NULL,
				CONSTRAINT map_platform_dma_pkey PRIMARY KEY (id),
				CONSTRAINT map_platform_dma_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id),
				CONSTRAINT map_platform_dma_dma_id_fkey FOREIGN KEY (dma_id) REFERENCES dim_dma (dma_id),
				CONSTRAINT map_platform_dma_platform_label_key UNIQUE (platform_id, platform_dma_label)
			)`,
			`CREATE TABLE dim_account (
				account_id SERIAL,
				platform_id INTEGER NOT NULL,
				external_account_id TEXT,
				account_name TEXT,
				CONSTRAINT dim_account_pkey PRIMARY KEY (account_id),
				CONSTRAINT dim_account_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id),
				CONSTRAINT dim_account_platform_external_key UNIQUE (platform_id, external_account_id)
			)`,
			`CREATE TABLE dim_campaign (
				campaign_id SERIAL,
				account_id INTEGER NOT NULL,
				external_campaign_id TEXT,
				campaign_name TEXT,
				CONSTRAINT dim_campaign_pkey PRIMARY KEY (campaign_id),
				CONSTRAINT dim_campaign_account_id_fkey FOREIGN KEY (account_id) REFERENCES dim_account (account_id),
				CONSTRAINT dim_campaign_account_external_key UNIQUE (account_id, external_campaign_id)
			)`,
			`CREATE TABLE dim_adset_or_adgroup (
				adset_id SERIAL,
				campaign_id INTEGER NOT NULL,
				external_adset_id TEXT,
				adset_name TEXT,
				CONSTRAINT dim_adset_or_adgroup_pkey PRIMARY KEY (adset_id),
				CONSTRAINT dim_adset_or_adgroup_campaign_id_fkey FOREIGN KEY (campaign_id) REFERENCES dim_campaign (campaign_id),
				CONSTRAINT dim_adset_campaign_external_key UNIQUE (campaign_id, external_adset_id)
			)`,
			`CREATE TABLE dim_ad (
				ad_id SERIAL,
				adset_id INTEGER NOT NULL,
				external_ad_id TEXT,
				ad_name TEXT,
				CONSTRAINT dim_ad_pkey PRIMARY KEY (ad_id),
				CONSTRAINT dim_ad_adset_id_fkey FOREIGN KEY (adset_id) REFERENCES dim_adset_or_adgroup (adset_id),
				CONSTRAINT dim_ad_adset_external_key UNIQUE (adset_id, external_ad_id)
			)`,
			`CREATE TABLE dim_attribution (
				attribution_id SERIAL,
				platform_id INTEGER NOT NULL,
				window_type TEXT NOT NULL,
				description TEXT,
				CONSTRAINT dim_attribution_pkey PRIMARY KEY (attribution_id),
				CONSTRAINT dim_attribution_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id),
				CONSTRAINT dim_attribution_platform_window_key UNIQUE (platform_id, window_type)
			)`,
			`CREATE TABLE dim_country (
				country_id SERIAL,
				iso2 TEXT NOT NULL,
				country_name TEXT NOT NULL,
				CONSTRAINT dim_country_pkey PRIMARY KEY (country_id),
				CONSTRAINT dim_country_iso2_key UNIQUE (iso2)
			)`,
			`CREATE TABLE dim_region (
				region_id SERIAL,
				country_id INTEGER NOT NULL,
				region_name TEXT NOT NULL,
				iso_subdivision TEXT,
				CONSTRAINT dim_region_pkey PRIMARY KEY (region_id),
				CONSTRAINT dim_region_country_id_fkey FOREIGN KEY (country_id) REFERENCES dim_country (country_id),
				CONSTRAINT dim_region_country_name_key UNIQUE (country_id, region_name)
			)`,
			`CREATE TABLE dim_city (
				city_id SERIAL,
				region_id INTEGER NOT NULL,
				city_name TEXT NOT NULL,
				CONSTRAINT dim_city_pkey PRIMARY KEY (city_id),
				CONSTRAINT dim_city_region_id_fkey FOREIGN KEY (region_id) REFERENCES dim_region (region_id),
				CONSTRAINT dim_city_region_name_key UNIQUE (region_id, city_name)
			)`,
			`CREATE TABLE dim_postal (
				postal_id SERIAL,
				city_id INTEGER NOT NULL,
				postal_code TEXT NOT NULL,
				CONSTRAINT dim_postal_pkey PRIMARY KEY (postal_id),
				CONSTRAINT dim_postal_city_id_fkey FOREIGN KEY (city_id) REFERENCES dim_city (city_id),
				CONSTRAINT dim_postal_city_code_key UNIQUE (city_id, postal_code)
			)`,
			`CREATE TABLE dim_date (
				date_id INTEGER NOT NULL,
				date_actual DATE NOT NULL,
				week INTEGER,
				month INTEGER,
				quarter INTEGER,
				year INTEGER,
				CONSTRAINT dim_date_pkey PRIMARY KEY (date_id)
			)`,
			`CREATE TABLE fact_marketing_daily (
				fact_id BIGSERIAL,
				platform_id INTEGER NOT NULL,
				account_id INTEGER NOT NULL,
				campaign_id INTEGER NOT NULL,
				adset_id INTEGER NOT NULL,
				ad_id INTEGER NOT NULL,
				date_id INTEGER NOT NULL,
				attribution_id INTEGER,
				country_id INTEGER,
				region_id INTEGER,
				dma_id INTEGER,
				currency_code TEXT,
				spend NUMERIC,
				impressions BIGINT,
				clicks BIGINT,
				conversions BIGINT,
				conversion_value NUMERIC,
				video_view_time BIGINT,
				frequency NUMERIC,
				reach BIGINT,
				add_to_cart BIGINT,
				CONSTRAINT fact_marketing_daily_pkey PRIMARY KEY (fact_id),
				CONSTRAINT fact_marketing_daily_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id),
				CONSTRAINT fact_marketing_daily_account_id_fkey FOREIGN KEY (account_id) REFERENCES dim_account (account_id),
				CONSTRAINT fact_marketing_daily_campaign_id_fkey FOREIGN KEY (campaign_id) REFERENCES dim_campaign (campaign_id),
				CONSTRAINT fact_marketing_daily_adset_id_fkey FOREIGN KEY (adset_id) REFERENCES dim_adset_or_adgroup (adset_id),
				CONSTRAINT fact_marketing_daily_ad_id_fkey FOREIGN KEY (ad_id) REFERENCES dim_ad (ad_id),
				CONSTRAINT fact_marketing_daily_date_id_fkey FOREIGN KEY (date_id) REFERENCES dim_date (date_id),
				CONSTRAINT fact_marketing_daily_attribution_id_fkey FOREIGN KEY (attribution_id) REFERENCES dim_attribution (attribution_id),
				CONSTRAINT fact_marketing_daily_country_id_fkey FOREIGN KEY (country_id) REFERENCES dim_country (country_id),
				CONSTRAINT fact_marketing_daily_region_id_fkey FOREIGN KEY (region_id) REFERENCES dim_region (region_id),
				CONSTRAINT fact_marketing_daily_dma_id_fkey FOREIGN KEY (dma_id) REFERENCES dim_dma (dma_id)
			)`,
			`CREATE TABLE fact_shopify_daily (
				fact_id BIGSERIAL,
				date_id INTEGER NOT NULL,
				country_id INTEGER NOT NULL,
				region_id INTEGER NOT NULL,
				city_id INTEGER NOT NULL,
				postal_id INTEGER NOT NULL,
				currency_code TEXT,
				sessions BIGINT,
				orders BIGINT,
				revenue NUMERIC,
				add_to_cart BIGINT,
				CONSTRAINT fact_shopify_daily_pkey PRIMARY KEY (fact_id),
				CONSTRAINT fact_shopify_daily_date_id_fkey FOREIGN KEY (date_id) REFERENCES dim_date (date_id),
				CONSTRAINT fact_shopify_daily_country_id_fkey FOREIGN KEY (country_id) REFERENCES dim_country (country_id),
				CONSTRAINT fact_shopify_daily_region_id_fkey FOREIGN KEY (region_id) REFERENCES dim_region (region_id),
				CONSTRAINT fact_shopify_daily_city_id_fkey FOREIGN KEY (city_id) REFERENCES dim_city (city_id),
				CONSTRAINT fact_shopify_daily_postal_id_fkey FOREIGN KEY (postal_id) REFERENCES dim_postal (postal_id)
			)`,
			`CREATE TABLE fact_model_results (
				model_run_id SERIAL,
				model_name TEXT NOT NULL,
				run_timestamp TIMESTAMP NOT NULL DEFAULT now(),
				platform_id INTEGER,
				dma_id INTEGER,
				date_id INTEGER,
				predicted_sales NUMERIC,
				attributed_sales NUMERIC,
				effect_size NUMERIC,
				confidence_interval JSONB,
				feature_importances JSONB,
				model_version TEXT NOT NULL,
				CONSTRAINT fact_model_results_pkey PRIMARY KEY (model_run_id),
				CONSTRAINT ux_model_result UNIQUE (model_name, model_version, platform_id, dma_id, date_id),
				CONSTRAINT fact_model_results_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id),
				CONSTRAINT fact_model_results_dma_id_fkey FOREIGN KEY (dma_id) REFERENCES dim_dma (dma_id),
				CONSTRAINT fact_model_results_date_id_fkey FOREIGN KEY (date_id) REFERENCES dim_date (date_id)
			)`,
			`CREATE INDEX ix_model_results_date ON fact_model_results (date_id)`,
			`CREATE INDEX ix_model_results_geo ON fact_model_results (dma_id)`,
			`CREATE TABLE stg_shopify_daily_city (
				date_id DATE NOT NULL,
				platform_id INTEGER NOT NULL,
				account_id INTEGER NOT NULL,
				country_iso2 TEXT NOT NULL,
				region_code TEXT NOT NULL,
				city_name_norm TEXT NOT NULL,
				country_id INTEGER,
				region_id INTEGER,
				city_id INTEGER,
				attribution_id INTEGER,
				orders NUMERIC(18,4) DEFAULT 0,
				gross_sales NUMERIC(18,4) DEFAULT 0,
				refunds NUMERIC(18,4) DEFAULT 0,
				shipping NUMERIC(18,4) DEFAULT 0,
				resolution_status TEXT NOT NULL DEFAULT 'UNRESOLVED',
				_ingested_at TIMESTAMP DEFAULT now(),
				_source_file TEXT,
				CONSTRAINT stg_shopify_daily_city_pk PRIMARY KEY (date_id, account_id, country_iso2, region_code, city_name_norm),
				CONSTRAINT stg_shopify_daily_city_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id) DEFERRABLE INITIALLY DEFERRED,
				CONSTRAINT stg_shopify_daily_city_account_id_fkey FOREIGN KEY (account_id) REFERENCES dim_account (account_id) DEFERRABLE INITIALLY DEFERRED,
				CONSTRAINT stg_shopify_daily_city_country_id_fkey FOREIGN KEY (country_id) REFERENCES dim_country (country_id) DEFERRABLE INITIALLY DEFERRED,
				CONSTRAINT stg_shopify_daily_city_region_id_fkey FOREIGN KEY (region_id) REFERENCES dim_region (region_id) DEFERRABLE INITIALLY DEFERRED,
				CONSTRAINT stg_shopify_daily_city_city_id_fkey FOREIGN KEY (city_id) REFERENCES dim_city (city_id) DEFERRABLE INITIALLY DEFERRED,
				CONSTRAINT stg_shopify_daily_city_attribution_id_fkey FOREIGN KEY (attribution_id) REFERENCES dim_attribution (attribution_id) DEFERRABLE INITIALLY DEFERRED
			)`,
			`CREATE TABLE map_city_dma (
				country_id INTEGER NOT NULL,
				region_id INTEGER NOT NULL,
				city_id INTEGER NOT NULL,
				dma_id INTEGER NOT NULL,
				effective_start_date DATE NOT NULL DEFAULT '2000-01-01'::date,
				effective_end_date DATE NOT NULL DEFAULT '2999-12-31'::date,
				dma_share NUMERIC(6,5) NOT NULL DEFAULT 1.00000,
				CONSTRAINT map_city_dma_pk PRIMARY KEY (country_id, region_id, city_id, dma_id, effective_start_date),
				CONSTRAINT map_city_dma_city_window_unique UNIQUE (country_id, region_id, city_id, effective_start_date, effective_end_date),
				CONSTRAINT map_city_dma_country_id_fkey FOREIGN KEY (country_id) REFERENCES dim_country (country_id),
				CONSTRAINT map_city_dma_region_id_fkey FOREIGN KEY (region_id) REFERENCES dim_region (region_id),
				CONSTRAINT map_city_dma_city_id_fkey FOREIGN KEY (city_id) REFERENCES dim_city (city_id),
				CONSTRAINT map_city_dma_dma_id_fkey FOREIGN KEY (dma_id) REFERENCES dim_dma (dma_id)
			)`,
			`CREATE TABLE map_postal_city_state (
				id SERIAL,
				postal_code TEXT NOT NULL,
				city_name TEXT NOT NULL,
				state_code TEXT NOT NULL,
				city_id INTEGER,
				CONSTRAINT map_postal_city_state_pkey PRIMARY KEY (id),
				CONSTRAINT map_postal_city_state_city_id_fkey FOREIGN KEY (city_id) REFERENCES dim_city (city_id)
			)`,
			`CREATE TABLE metric_availability (
				id SERIAL,
				platform_id INTEGER NOT NULL,
				location_level TEXT NOT NULL,
				metric_name TEXT NOT NULL,
				is_available BOOLEAN NOT NULL,
				CONSTRAINT metric_availability_pkey PRIMARY KEY (id),
				CONSTRAINT metric_availability_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id),
				CONSTRAINT metric_availability_platform_level_metric_key UNIQUE (platform_id, location_level, metric_name)
			)`,
			`CREATE TABLE event_ingestion_log (
				log_id BIGSERIAL,
				platform_id INTEGER,
				sync_timestamp TIMESTAMP NOT NULL DEFAULT now(),
				records_fetched INTEGER NOT NULL,
				status TEXT NOT NULL,
				error_message TEXT,
				duration_seconds NUMERIC,
				CONSTRAINT event_ingestion_log_pkey PRIMARY KEY (log_id),
				CONSTRAINT event_ingestion_log_platform_id_fkey FOREIGN KEY (platform_id) REFERENCES dim_platform (platform_id)
			)`,
		},
		Reverse: []string{
			`DROP TABLE event_ingestion_log`,
			`DROP TABLE metric_availability`,
			`DROP TABLE map_postal_city_state`,
			`DROP TABLE map_city_dma`,
			`DROP TABLE stg_shopify_daily_city`,
			`DROP INDEX ix_model_results_geo`,
			`DROP INDEX ix_model_results_date`,
			`DROP TABLE fact_model_results`,
			`DROP TABLE fact_shopify_daily`,
			`DROP TABLE fact_marketing_daily`,
			`DROP TABLE dim_date`,
			`DROP TABLE dim_postal`,
			`DROP TABLE dim_city`,
			`DROP TABLE dim_region`,
			`DROP TABLE dim_country`,
			`DROP TABLE dim_attribution`,
			`DROP TABLE dim_ad`,
			`DROP TABLE dim_adset_or_adgroup`,
			`DROP TABLE dim_campaign`,
			`DROP TABLE dim_account`,
			`DROP TABLE map_platform_dma`,
			`DROP TABLE dim_dma`,
			`DROP TABLE dim_platform`,
		},
	},
}
