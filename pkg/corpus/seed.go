package corpus

import "github.com/coolbeans/costadvisor/pkg/types"

// seedRecords returns the built-in corpus of Singapore costs jurisprudence.
// Order matters: it is the tie-break order for equally scored matches, so
// the leading authorities come first.
func seedRecords() []*types.PrecedentRecord {
	return []*types.PrecedentRecord{
		{
			CaseID:         "then_khek_koon_2014",
			Citation:       "[2014] 1 SLR 245",
			ShortName:      "Then Khek Koon v Arjuna Vijaya Rasiah",
			Court:          types.CourtSGHC,
			Year:           2014,
			Provision:      "O 59 r 5 ROC 2014",
			Principle:      "Indemnity costs require exceptional circumstances such as conduct that is unreasonable to a high degree; the touchstone of party-and-party costs remains compensatory, not punitive.",
			Interpretation: "The court set out the principled framework for departing from the standard basis: the paying party's conduct in the litigation, and not the mere fact of losing, must justify indemnity costs. Dishonesty, abuse of process, or the pursuit of a hopeless case may suffice.",
			VerbatimQuote:  "The object of an award of costs on the indemnity basis is not to punish the paying party but to give the receiving party a fuller, though still not complete, indemnity for the costs it has incurred.",
			Keywords:       []string{"indemnity", "unreasonable conduct", "compensatory principle", "basis of taxation", "standard basis"},
			RelevanceTags:  []string{"indemnity_costs", "general_principles", "assessment_of_costs"},
		},
		{
			CaseID:         "airtrust_2016",
			Citation:       "[2016] 5 SLR 103",
			ShortName:      "Airtrust (Hong Kong) Ltd v PH Hydraulics & Engineering Pte Ltd",
			Court:          types.CourtSGHC,
			Year:           2016,
			Provision:      "O 59 r 5 ROC 2014",
			Principle:      "A two-stage inquiry governs indemnity costs: whether the conduct of the paying party was so unreasonable as to justify the order, and whether in all the circumstances the court should exercise its discretion to make it.",
			Interpretation: "The court collected the categories of conduct attracting indemnity costs, including allegations of fraud pursued without foundation, deliberate suppression of documents, and litigation conducted oppressively.",
			VerbatimQuote:  "The discretion to award indemnity costs must be exercised judicially; the conduct relied upon must fall outside the ordinary run of contested litigation.",
			Keywords:       []string{"indemnity", "fraud allegations", "oppressive conduct", "discretion", "two-stage test"},
			RelevanceTags:  []string{"indemnity_costs", "general_principles"},
		},
		{
			CaseID:         "maryani_sadeli_2015",
			Citation:       "[2015] 1 SLR 496",
			ShortName:      "Maryani Sadeli v Arjun Permanand Samtani",
			Court:          types.CourtSGCA,
			Year:           2015,
			Provision:      "O 59 ROC 2014",
			Principle:      "Unrecovered legal costs are not recoverable as damages in a subsequent action; the costs regime embodies a deliberate policy of partial indemnity in the interests of finality and access to justice.",
			Interpretation: "The Court of Appeal explained that the gap between solicitor-and-client costs and party-and-party recovery is a feature of the regime, not a wrong to be remedied elsewhere, and anchors every quantification exercise in policy rather than full restitution.",
			VerbatimQuote:  "Our costs regime is, at its core, a manifestation of a policy decision to enhance access to justice, and full recovery of costs is the exception rather than the norm.",
			Keywords:       []string{"unrecovered costs", "damages", "policy", "partial indemnity", "access to justice"},
			RelevanceTags:  []string{"general_principles", "proportionality", "solicitor_client_costs"},
		},
		{
			CaseID:         "lock_han_chng_2008",
			Citation:       "[2008] 2 SLR(R) 455",
			ShortName:      "Lock Han Chng Jonathan v Goh Jessiline",
			Court:          types.CourtSGCA,
			Year:           2008,
			Provision:      "O 59 r 27 ROC 2014",
			Principle:      "Costs must bear a reasonable relationship to the value and complexity of the dispute; litigation over modest sums should not generate costs that dwarf the claim.",
			Interpretation: "The Court of Appeal deprecated the escalation of a small claim into protracted proceedings and applied proportionality as an overriding consideration in the assessment of quantum.",
			VerbatimQuote:  "It cannot be right that the resolution of so modest a dispute should generate costs out of all proportion to the amount at stake.",
			Keywords:       []string{"proportionality", "small claims", "quantum", "reasonableness"},
			RelevanceTags:  []string{"proportionality", "general_principles", "assessment_of_costs"},
		},
		{
			CaseID:         "db_trustees_2010",
			Citation:       "[2010] 3 SLR 542",
			ShortName:      "DB Trustees (Hong Kong) Ltd v Consult Asia Pte Ltd",
			Court:          types.CourtSGCA,
			Year:           2010,
			Provision:      "s 18 SCJA read with para 13 First Schedule",
			Principle:      "Costs may be ordered against a non-party where there is a close connection between the non-party and the proceedings and the non-party caused the incurrence of the costs.",
			Interpretation: "The Court of Appeal identified funding and control of the litigation as the paradigm connections, while stressing that a non-party costs order remains exceptional and fact-sensitive.",
			VerbatimQuote:  "Where a non-party both funds and controls legal proceedings, justice will usually demand that it bears the costs occasioned by its involvement.",
			Keywords:       []string{"non-party", "funding", "control", "exceptional", "close connection"},
			RelevanceTags:  []string{"non_party_costs", "general_principles"},
		},
		{
			CaseID:         "ong_wui_teck_2020",
			Citation:       "[2020] 1 SLR 855",
			ShortName:      "Ong Wui Teck v Attorney-General",
			Court:          types.CourtSGCA,
			Year:           2020,
			Provision:      "O 59 r 18A ROC 2014",
			Principle:      "A litigant in person may recover costs compensating for time reasonably spent and expenses reasonably incurred, but the award reflects compensation, not professional rates.",
			Interpretation: "The Court of Appeal confirmed the discretion to award costs to self-represented parties while calibrating quantum well below what a solicitor would have charged for equivalent work.",
			VerbatimQuote:  "The award to a litigant in person is a reasonable allowance for time expended and work done, and is not to be equated with the remuneration of counsel.",
			Keywords:       []string{"litigant in person", "self-represented", "reasonable allowance", "quantum"},
			RelevanceTags:  []string{"litigant_in_person", "assessment_of_costs"},
		},
		{
			CaseID:         "tullio_planeta_1994",
			Citation:       "[1994] 2 SLR(R) 501",
			ShortName:      "Tullio Planeta v Maoro Andrea G",
			Court:          types.CourtSGCA,
			Year:           1994,
			Provision:      "O 59 r 3 ROC 2014",
			Principle:      "Costs follow the event unless there is positive reason to deprive the successful party; success is assessed substantively, not issue by issue mechanically.",
			Interpretation: "The Court of Appeal treated the general rule as the anchor of the costs discretion, with departures requiring articulated justification grounded in the conduct or outcome of the proceedings.",
			VerbatimQuote:  "The general rule is that costs follow the event, and a successful party is deprived of his costs only for good reason shown.",
			Keywords:       []string{"costs follow the event", "successful party", "discretion", "general rule"},
			RelevanceTags:  []string{"costs_follow_event", "general_principles"},
		},
		{
			CaseID:         "singapore_shooting_2019",
			Citation:       "[2020] 1 SLR 395",
			ShortName:      "Singapore Shooting Association v Singapore Rifle Association",
			Court:          types.CourtSGCA,
			Year:           2019,
			Provision:      "O 59 r 6A ROC 2014",
			Principle:      "The costs discretion extends to reflecting partial success and distinct issues; a successful party that fails on discrete issues may be deprived of a portion of its costs.",
			Interpretation: "The Court of Appeal endorsed an issues-based approach where the litigation divides cleanly, while cautioning against excessive granularity in ordinary cases.",
			VerbatimQuote:  "Where a party succeeds overall but fails on a discrete issue that occupied significant time, the court may properly make a proportionate deduction.",
			Keywords:       []string{"issues-based costs", "partial success", "apportionment", "discretion"},
			RelevanceTags:  []string{"costs_follow_event", "contested_trial", "general_principles"},
		},
		{
			CaseID:         "mercurine_2008",
			Citation:       "[2008] 4 SLR(R) 907",
			ShortName:      "Mercurine Pte Ltd v Canberra Development Pte Ltd",
			Court:          types.CourtSGCA,
			Year:           2008,
			Provision:      "O 13 r 8 ROC 2014",
			Principle:      "On setting aside a regular default judgment the usual price is costs thrown away; the defendant obtains a hearing on the merits but compensates the plaintiff for the detour.",
			Interpretation: "The Court of Appeal restated the tests for setting aside default judgments and treated costs as the customary instrument for balancing the prejudice occasioned by the default.",
			VerbatimQuote:  "The defendant who has allowed judgment to go by default and later seeks the indulgence of the court must ordinarily bear the costs thrown away.",
			Keywords:       []string{"default judgment", "setting aside", "costs thrown away", "regular judgment"},
			RelevanceTags:  []string{"default_judgment", "interlocutory"},
		},
		{
			CaseID:         "m2b_world_2015",
			Citation:       "[2015] 1 SLR 325",
			ShortName:      "M2B World Asia Pacific Pte Ltd v Matsumura Akihiko",
			Court:          types.CourtSGHC,
			Year:           2015,
			Provision:      "O 14 ROC 2014",
			Principle:      "Summary judgment costs track the fixed scales unless the application raised issues of unusual weight; a successful plaintiff recovers the costs of the action up to judgment.",
			Interpretation: "The High Court applied the scale figures for summary determination and reiterated that the abbreviated procedure is reflected in an abbreviated costs award.",
			VerbatimQuote:  "The costs of an Order 14 application are intended to reflect the summary nature of the procedure.",
			Keywords:       []string{"summary judgment", "fixed scales", "order 14", "no triable issue"},
			RelevanceTags:  []string{"summary_judgment", "costs_follow_event"},
		},
		{
			CaseID:         "gabriel_peter_1997",
			Citation:       "[1997] 3 SLR(R) 649",
			ShortName:      "Gabriel Peter & Partners v Wee Chong Jin",
			Court:          types.CourtSGCA,
			Year:           1997,
			Provision:      "O 18 r 19 ROC 2014",
			Principle:      "Striking out is reserved for plain and obvious cases; an unsuccessful striking-out application ordinarily carries costs against the applicant, assessed on the interlocutory scale.",
			Interpretation: "The Court of Appeal confined summary dismissal to clear cases, which in costs terms frames the striking-out application as a distinct interlocutory event with its own costs consequence.",
			VerbatimQuote:  "The power to strike out is exercised only in plain and obvious cases, and the costs of a failed invocation fall where they ought.",
			Keywords:       []string{"striking out", "plain and obvious", "interlocutory", "abuse of process"},
			RelevanceTags:  []string{"striking_out", "interlocutory"},
		},
		{
			CaseID:         "lin_jianwei_2021",
			Citation:       "[2021] 2 SLR 683",
			ShortName:      "Lin Jianwei v Tung Yu-Lien Margaret",
			Court:          types.CourtSGCA,
			Year:           2021,
			Provision:      "s 120 Legal Profession Act",
			Principle:      "Solicitor-and-client costs are assessed on a more generous basis than party-and-party costs, but remain subject to reasonableness review in the interests of the client.",
			Interpretation: "The Court of Appeal examined the solicitor's entitlement to costs against the client and the safeguards of assessment, distinguishing that exercise from inter partes quantification.",
			VerbatimQuote:  "The relationship between solicitor and client imports its own basis of assessment, distinct from the partial indemnity recovered between parties.",
			Keywords:       []string{"solicitor and client", "assessment", "reasonableness", "legal profession act"},
			RelevanceTags:  []string{"solicitor_client_costs", "assessment_of_costs"},
		},
		{
			CaseID:         "wlr_v_wls_2024",
			Citation:       "[2024] SGHC 4",
			ShortName:      "WLR v WLS",
			Court:          types.CourtSGHC,
			Year:           2024,
			Provision:      "O 21 r 2(2) ROC 2021",
			Principle:      "Under the Rules of Court 2021 the court assesses costs by reference to all relevant circumstances including efficiency, conduct, and the amended ideals; proportionality is an express touchstone.",
			Interpretation: "The High Court applied the O 21 r 2(2) factors to a contested assessment, confirming that the 2021 framework restates rather than displaces the settled costs principles while foregrounding proportionality.",
			VerbatimQuote:  "The factors in O 21 r 2(2) direct attention to proportionality, such that effort expended must be measured against what the dispute reasonably required.",
			Keywords:       []string{"rules of court 2021", "proportionality", "assessment factors", "efficiency"},
			RelevanceTags:  []string{"proportionality", "assessment_of_costs", "general_principles", "contested_trial"},
		},
		{
			CaseID:         "dcs_v_dct_2024",
			Citation:       "[2024] SGHC(A) 17",
			ShortName:      "DCS v DCT",
			Court:          types.CourtSGHCA,
			Year:           2024,
			Provision:      "O 21 r 22 ROC 2021",
			Principle:      "An appellate court interferes with a costs order only where the judge erred in principle or the order is plainly wrong; the appellate scales govern costs of the appeal itself.",
			Interpretation: "The Appellate Division restated the deferential standard of review for costs orders and applied the appellate costs guidance to the disposal of the appeal.",
			VerbatimQuote:  "Costs are quintessentially a matter of discretion, and appellate intervention is reserved for errors of principle.",
			Keywords:       []string{"appeal", "appellate costs", "standard of review", "discretion"},
			RelevanceTags:  []string{"appeal", "general_principles"},
		},
	}
}
