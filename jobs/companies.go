package jobs

// Companies hosting their boards on Greenhouse.
var greenhouseCompanies = []Company{
	{Name: "Bolt", Slug: "boltv2", Domain: "bolt.eu"},
	{Name: "N26", Slug: "n26", Domain: "n26.com"},
	{Name: "HelloFresh", Slug: "hellofresh", Domain: "hellofresh.com"},
	{Name: "GitLab", Slug: "gitlab", Domain: "gitlab.com"},
	{Name: "Databricks", Slug: "databricks", Domain: "databricks.com"},
	{Name: "Grafana Labs", Slug: "grafanalabs", Domain: "grafana.com"},
	{Name: "Cloudflare", Slug: "cloudflare", Domain: "cloudflare.com"},
	{Name: "Stripe", Slug: "stripe", Domain: "stripe.com"},
	{Name: "Datadog", Slug: "datadog", Domain: "datadoghq.com"},
	{Name: "Elastic", Slug: "elastic", Domain: "elastic.co"},
	{Name: "Samsara", Slug: "samsara", Domain: "samsara.com"},
	{Name: "ClickHouse", Slug: "clickhouse", Domain: "clickhouse.com"},
	{Name: "Helsing", Slug: "helsing", Domain: "helsing.ai"},
	{Name: "Wayve", Slug: "wayve", Domain: "wayve.ai"},
	{Name: "Temporal", Slug: "temporal", Domain: "temporal.io"},
	{Name: "Doctolib", Slug: "doctolib", Domain: "doctolib.com"},
	{Name: "FlixBus", Slug: "flix", Domain: "flixbus.com"},
	{Name: "Raisin", Slug: "raisin", Domain: "raisin.com"},
	{Name: "SumUp", Slug: "sumup", Domain: "sumup.com"},
	{Name: "Celonis", Slug: "celonis", Domain: "celonis.com"},
	{Name: "Contentful", Slug: "contentful", Domain: "contentful.com"},
	{Name: "GetYourGuide", Slug: "getyourguide", Domain: "getyourguide.com"},
}

// Companies hosting their boards on SmartRecruiters.
var smartRecruitersCompanies = []Company{
	{Name: "Delivery Hero", Slug: "DeliveryHero", Domain: "deliveryhero.com"},
	{Name: "Canva", Slug: "Canva", Domain: "canva.com"},
	{Name: "ByteDance", Slug: "ByteDance", Domain: "bytedance.com"},
	{Name: "Uber", Slug: "Uber", Domain: "uber.com"},
	{Name: "Check24", Slug: "check24", Domain: "check24.de"},
	{Name: "AboutYou", Slug: "aboutyougmbh", Domain: "aboutyou.com"},
	{Name: "Sixt", Slug: "sixt", Domain: "sixt.com"},
	{Name: "AUTO1 Group", Slug: "auto1", Domain: "auto1-group.com"},
	{Name: "Omio", Slug: "omio", Domain: "omio.com"},
}

// DefaultScrapers builds the full roster of board scrapers.
func DefaultScrapers() []Scraper {
	scrapers := []Scraper{}
	for _, company := range greenhouseCompanies {
		scrapers = append(scrapers, GreenhouseScraper{Company: company})
	}
	for _, company := range smartRecruitersCompanies {
		scrapers = append(scrapers, SmartRecruitersScraper{Company: company})
	}
	return scrapers
}
