package sectors

// Catalogue des secteurs. L'ordre de déclaration est l'ordre d'affichage
// dans le choix de secteur de l'onboarding.
var catalog = []Profile{
	{
		ID:          "commerce_retail",
		Label:       "Commerce & Retail",
		Icon:        "ShoppingBag",
		Color:       "#10b981",
		Description: "Boutiques, e-commerce, distribution",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Clients", Icon: "Building2", MenuOrder: 10,
				Types: []string{"Particulier", "Professionnel", "Revendeur", "Distributeur", "Fournisseur"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Particulier", "Professionnel", "Revendeur", "Distributeur", "Fournisseur"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
					{Name: "address", Label: "Adresse", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Actif", "Inactif"}},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"Acheteur", "Décideur", "Comptable", "SAV"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Acheteur", "Décideur", "Comptable", "SAV"}},
					{Name: "email", Label: "Email", Type: FieldText, Required: true},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "product", Label: "Produits", Icon: "Package", MenuOrder: 30,
				Types: []string{"Produit", "Service", "Abonnement", "Pack"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Produit", "Service", "Abonnement", "Pack"}},
					{Name: "sku", Label: "SKU", Type: FieldText},
					{Name: "price", Label: "Prix", Type: FieldNumber},
					{Name: "category", Label: "Catégorie", Type: FieldText},
				},
			},
			{
				Name: "quote", Label: "Devis", Icon: "FileText", MenuOrder: 40,
				Types: []string{"B2C", "B2B", "En ligne", "Boutique"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"B2C", "B2B", "En ligne", "Boutique"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyé", "Accepté", "Refusé"}},
				},
			},
			{
				Name: "order", Label: "Commandes", Icon: "ShoppingCart", MenuOrder: 50,
				Types: []string{"B2C", "B2B", "En ligne", "Boutique"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"B2C", "B2B", "En ligne", "Boutique"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"En préparation", "Expédiée", "Livrée", "Annulée"}},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 60,
				Types: []string{"Standard", "Avoir", "B2B"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Standard", "Avoir", "B2B"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "due_date", Label: "Échéance", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "store", Label: "Magasin", LabelPlural: "Magasins", Icon: "Store", MenuOrder: 70,
				Types: []string{"Boutique", "Entrepôt"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Boutique", "Entrepôt"}},
					{Name: "address", Label: "Adresse", Type: FieldText},
					{Name: "manager", Label: "Responsable", Type: FieldText},
				},
			},
			{
				Name: "inventory", Label: "Stock", LabelPlural: "Stocks", Icon: "Warehouse", MenuOrder: 80,
				Types: []string{"Produit", "Matière"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Produit", "Matière"}},
					{Name: "quantity", Label: "Quantité", Type: FieldNumber},
					{Name: "min_stock", Label: "Stock minimum", Type: FieldNumber},
				},
			},
		},
		DashboardKPIs: []string{"revenue", "orders_count", "avg_basket", "stock_alerts"},
	},

	{
		ID:          "conseil_ingenierie",
		Label:       "Conseil & Ingénierie",
		Icon:        "Lightbulb",
		Color:       "#6366f1",
		Description: "Consulting, bureaux d'études, ESN",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Clients", Icon: "Building2", MenuOrder: 10,
				Types: []string{"PME", "Grand compte", "Secteur public", "Partenaire"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"PME", "Grand compte", "Secteur public", "Partenaire"}},
					{Name: "industry", Label: "Secteur", Type: FieldText},
					{Name: "effectif", Label: "Effectif", Type: FieldNumber},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"Décideur", "Prescripteur", "Acheteur", "RH", "Technique"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Décideur", "Prescripteur", "Acheteur", "RH", "Technique"}},
					{Name: "email", Label: "Email", Type: FieldText, Required: true},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "lead", Label: "Prospects", Icon: "UserPlus", MenuOrder: 25,
				Types: []string{"Inbound", "Outbound", "Partenaire"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Inbound", "Outbound", "Partenaire"}},
					{Name: "source", Label: "Source", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Nouveau", "En cours", "Qualifié", "Perdu"}},
				},
			},
			{
				Name: "opportunity", Label: "Opportunités", Icon: "Target", MenuOrder: 30,
				Types: []string{"Régie", "Forfait", "Projet", "Audit"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Régie", "Forfait", "Projet", "Audit"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "stage", Label: "Étape", Type: FieldSelect, Options: []string{"Prospection", "Proposition", "Négociation", "Gagnée", "Perdue"}},
				},
			},
			{
				Name: "quote", Label: "Propositions", Icon: "FileText", MenuOrder: 40,
				Types: []string{"AO", "Proposition", "SOW"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"AO", "Proposition", "SOW"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "valid_until", Label: "Valide jusqu'au", Type: FieldDate},
				},
			},
			{
				Name: "contract", Label: "Contrats", Icon: "FileCheck", MenuOrder: 50,
				Types: []string{"Cadre", "Mission", "Maintenance"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Cadre", "Mission", "Maintenance"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "end_date", Label: "Fin", Type: FieldDate},
					{Name: "value", Label: "Valeur", Type: FieldNumber},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 60,
				Types: []string{"Honoraires", "Forfait", "Récurrent"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Honoraires", "Forfait", "Récurrent"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "due_date", Label: "Échéance", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "mission", Label: "Mission", LabelPlural: "Missions", Icon: "Briefcase", MenuOrder: 70,
				Types: []string{"Audit", "Conseil", "Projet", "Support"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Audit", "Conseil", "Projet", "Support"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "end_date", Label: "Fin", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifiée", "En cours", "Terminée"}},
				},
			},
			{
				Name: "consultant", Label: "Consultant", LabelPlural: "Consultants", Icon: "UserCheck", MenuOrder: 80,
				Types: []string{"Interne", "Externe"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Interne", "Externe"}},
					{Name: "rate", Label: "Taux journalier", Type: FieldNumber},
					{Name: "availability", Label: "Disponible", Type: FieldCheckbox, Default: true},
				},
			},
			{
				Name: "timesheet", Label: "Feuille de temps", LabelPlural: "Feuilles de temps", Icon: "Clock", MenuOrder: 90,
				Types: []string{"Hebdo", "Mensuel"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Hebdo", "Mensuel"}},
					{Name: "period_start", Label: "Début période", Type: FieldDate},
					{Name: "hours", Label: "Heures", Type: FieldNumber},
				},
			},
		},
		DashboardKPIs: []string{"pipeline_value", "missions_active", "utilization_rate", "revenue_forecast"},
	},

	{
		ID:          "construction_btp",
		Label:       "Construction & BTP",
		Icon:        "HardHat",
		Color:       "#f59e0b",
		Description: "Bâtiment, travaux publics, artisanat",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Clients", Icon: "Building2", MenuOrder: 10,
				Types: []string{"Particulier", "Promoteur", "Collectivité", "Architecte", "Entreprise"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Particulier", "Promoteur", "Collectivité", "Architecte", "Entreprise"}},
					{Name: "siret", Label: "SIRET", Type: FieldText},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
					{Name: "address", Label: "Adresse", Type: FieldText},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"MOA", "MOE", "Conducteur", "Chef de chantier"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"MOA", "MOE", "Conducteur", "Chef de chantier"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "quote", Label: "Devis", Icon: "FileText", MenuOrder: 30,
				Types: []string{"Devis", "Avenant"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Devis", "Avenant"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "site_address", Label: "Adresse chantier", Type: FieldText},
				},
			},
			{
				Name: "order", Label: "Commandes", Icon: "ClipboardList", MenuOrder: 40,
				Types: []string{"Marché", "Sous-traitance", "Achat"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Marché", "Sous-traitance", "Achat"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifiée", "En cours", "Terminée"}},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 50,
				Types: []string{"Situation", "Solde", "Avoir"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Situation", "Solde", "Avoir"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "chantier", Label: "Chantier", LabelPlural: "Chantiers", Icon: "Construction", MenuOrder: 60,
				Types: []string{"Neuf", "Rénovation", "Maintenance"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Neuf", "Rénovation", "Maintenance"}},
					{Name: "address", Label: "Adresse", Type: FieldText},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifié", "En cours", "Livré"}},
				},
			},
			{
				Name: "intervention", Label: "Intervention", LabelPlural: "Interventions", Icon: "Wrench", MenuOrder: 70,
				Types: []string{"SAV", "Urgence", "Planifiée"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"SAV", "Urgence", "Planifiée"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifiée", "En cours", "Terminée"}},
				},
			},
			{
				Name: "materiel", Label: "Matériel", LabelPlural: "Matériels", Icon: "Truck", MenuOrder: 80,
				Types: []string{"Engin", "Outil", "Véhicule"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Engin", "Outil", "Véhicule"}},
					{Name: "serial", Label: "Numéro de série", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Disponible", "En service", "Maintenance"}},
				},
			},
		},
		DashboardKPIs: []string{"chantiers_actifs", "ca_mensuel", "devis_en_attente", "interventions_planifiees"},
	},

	{
		ID:          "sante_social",
		Label:       "Santé & Social",
		Icon:        "Heart",
		Color:       "#ec4899",
		Description: "Cabinets médicaux, associations, EHPAD",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Structures", Icon: "Building2", MenuOrder: 10,
				Types: []string{"Cabinet", "Clinique", "Association", "EHPAD", "Hôpital"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Cabinet", "Clinique", "Association", "EHPAD", "Hôpital"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
					{Name: "address", Label: "Adresse", Type: FieldText},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"Patient", "Médecin", "Infirmier", "Famille", "Administratif"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Patient", "Médecin", "Infirmier", "Famille", "Administratif"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "case", Label: "Dossiers", Icon: "FolderOpen", MenuOrder: 30,
				Types: []string{"Suivi", "Social", "Médical"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Suivi", "Social", "Médical"}},
					{Name: "opened_date", Label: "Date d'ouverture", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Ouvert", "En cours", "Clos"}},
				},
			},
			{
				Name: "invoice", Label: "Facturation", Icon: "Receipt", MenuOrder: 50,
				Types: []string{"Patient", "Tiers-payant", "Mutuelle"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Patient", "Tiers-payant", "Mutuelle"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "patient", Label: "Patient", LabelPlural: "Patients", Icon: "UserHeart", MenuOrder: 25,
				Types: []string{"Adulte", "Enfant", "Senior"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Adulte", "Enfant", "Senior"}},
					{Name: "birthdate", Label: "Date de naissance", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Actif", "Inactif"}},
				},
			},
			{
				Name: "rdv", Label: "Rendez-vous", LabelPlural: "Rendez-vous", Icon: "Calendar", MenuOrder: 35,
				Types: []string{"Consultation", "Suivi", "Urgence"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Consultation", "Suivi", "Urgence"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifié", "Réalisé", "Annulé"}},
				},
			},
			{
				Name: "prescription", Label: "Prescription", LabelPlural: "Prescriptions", Icon: "Pill", MenuOrder: 40,
				Types: []string{"Médicament", "Soins", "Examen"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Médicament", "Soins", "Examen"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "notes", Label: "Notes", Type: FieldText},
				},
			},
		},
		DashboardKPIs: []string{"patients_actifs", "rdv_jour", "dossiers_ouverts", "facturation_mois"},
	},

	{
		ID:          "services_personnels",
		Label:       "Services à la personne",
		Icon:        "Sparkles",
		Color:       "#8b5cf6",
		Description: "Coiffure, esthétique, bien-être",
		CoreObjects: []Object{
			{
				Name: "contact", Label: "Clients", Icon: "Users", MenuOrder: 10,
				Types: []string{"Client", "Prospect", "Abonné"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Client", "Prospect", "Abonné"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "product", Label: "Prestations", Icon: "Sparkles", MenuOrder: 20,
				Types: []string{"Prestation", "Forfait", "Abonnement"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Prestation", "Forfait", "Abonnement"}},
					{Name: "duration", Label: "Durée (min)", Type: FieldNumber},
					{Name: "price", Label: "Prix", Type: FieldNumber},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 40,
				Types: []string{"Unitaire", "Abonnement"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Unitaire", "Abonnement"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "rdv", Label: "Rendez-vous", LabelPlural: "Rendez-vous", Icon: "Calendar", MenuOrder: 15,
				Types: []string{"Unique", "Récurrent"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Unique", "Récurrent"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifié", "Réalisé", "Annulé"}},
				},
			},
			{
				Name: "fiche_client", Label: "Fiche client", LabelPlural: "Fiches clients", Icon: "ClipboardList", MenuOrder: 25,
				Types: []string{"Standard", "VIP"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Standard", "VIP"}},
					{Name: "preferences", Label: "Préférences", Type: FieldText},
					{Name: "notes", Label: "Notes", Type: FieldText},
				},
			},
			{
				Name: "abonnement", Label: "Abonnement", LabelPlural: "Abonnements", Icon: "CreditCard", MenuOrder: 30,
				Types: []string{"Mensuel", "Annuel"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Mensuel", "Annuel"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "end_date", Label: "Fin", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Actif", "Suspendu", "Résilié"}},
				},
			},
		},
		DashboardKPIs: []string{"rdv_jour", "ca_semaine", "clients_fideles", "prestations_populaires"},
	},

	{
		ID:          "services_administratifs",
		Label:       "Services administratifs",
		Icon:        "FileStack",
		Color:       "#64748b",
		Description: "Comptabilité, juridique, RH",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Clients", Icon: "Building2", MenuOrder: 10,
				Types: []string{"PME", "Association", "Indépendant"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"PME", "Association", "Indépendant"}},
					{Name: "siret", Label: "SIRET", Type: FieldText},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"Dirigeant", "Comptable", "RH", "Juriste"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Dirigeant", "Comptable", "RH", "Juriste"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "contract", Label: "Contrats", Icon: "FileCheck", MenuOrder: 30,
				Types: []string{"Forfait", "Récurrent", "Ponctuel"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Forfait", "Récurrent", "Ponctuel"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "end_date", Label: "Fin", Type: FieldDate},
				},
			},
			{
				Name: "quote", Label: "Devis", Icon: "FileText", MenuOrder: 40,
				Types: []string{"Forfait", "Devis"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Forfait", "Devis"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "valid_until", Label: "Valide jusqu'au", Type: FieldDate},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 50,
				Types: []string{"Honoraires", "Abonnement"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Honoraires", "Abonnement"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "dossier", Label: "Dossier", LabelPlural: "Dossiers", Icon: "FolderOpen", MenuOrder: 25,
				Types: []string{"Compta", "Juridique", "RH"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Compta", "Juridique", "RH"}},
					{Name: "reference", Label: "Référence", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Ouvert", "En cours", "Clos"}},
				},
			},
			{
				Name: "echeance", Label: "Échéance", LabelPlural: "Échéances", Icon: "CalendarClock", MenuOrder: 35,
				Types: []string{"Déclarative", "Paiement"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Déclarative", "Paiement"}},
					{Name: "due_date", Label: "Échéance", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"À faire", "Fait", "En retard"}},
				},
			},
			{
				Name: "document", Label: "Document", LabelPlural: "Documents", Icon: "File", MenuOrder: 45,
				Types: []string{"Contrat", "Bilan", "Bulletin"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Contrat", "Bilan", "Bulletin"}},
					{Name: "reference", Label: "Référence", Type: FieldText},
					{Name: "date", Label: "Date", Type: FieldDate},
				},
			},
		},
		DashboardKPIs: []string{"dossiers_actifs", "echeances_semaine", "ca_mensuel", "taux_recouvrement"},
	},

	{
		ID:          "hebergement_restauration",
		Label:       "Hôtellerie & Restauration",
		Icon:        "UtensilsCrossed",
		Color:       "#ef4444",
		Description: "Hôtels, restaurants, traiteurs",
		CoreObjects: []Object{
			{
				Name: "contact", Label: "Clients", Icon: "Users", MenuOrder: 10,
				Types: []string{"Individuel", "Groupe", "Entreprise", "Tour-opérateur"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Individuel", "Groupe", "Entreprise", "Tour-opérateur"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "product", Label: "Menu/Services", Icon: "UtensilsCrossed", MenuOrder: 20,
				Types: []string{"Chambre", "Menu", "Événement", "Service"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Chambre", "Menu", "Événement", "Service"}},
					{Name: "price", Label: "Prix", Type: FieldNumber},
					{Name: "duration", Label: "Durée", Type: FieldText},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 50,
				Types: []string{"Séjour", "Prestation", "Groupe"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Séjour", "Prestation", "Groupe"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "reservation", Label: "Réservation", LabelPlural: "Réservations", Icon: "CalendarCheck", MenuOrder: 15,
				Types: []string{"Chambre", "Table", "Événement"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Chambre", "Table", "Événement"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "end_date", Label: "Fin", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Confirmée", "En attente", "Annulée"}},
				},
			},
			{
				Name: "chambre", Label: "Chambre", LabelPlural: "Chambres", Icon: "Bed", MenuOrder: 25,
				Types: []string{"Standard", "Suite", "Familiale"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Standard", "Suite", "Familiale"}},
					{Name: "number", Label: "Numéro", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Disponible", "Occupée", "Maintenance"}},
				},
			},
			{
				Name: "table", Label: "Table", LabelPlural: "Tables", Icon: "Armchair", MenuOrder: 30,
				Types: []string{"2 places", "4 places", "6 places"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"2 places", "4 places", "6 places"}},
					{Name: "number", Label: "Numéro", Type: FieldText},
					{Name: "seats", Label: "Places", Type: FieldNumber},
				},
			},
			{
				Name: "evenement", Label: "Événement", LabelPlural: "Événements", Icon: "PartyPopper", MenuOrder: 35,
				Types: []string{"Séminaire", "Mariage", "Anniversaire"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Séminaire", "Mariage", "Anniversaire"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Prévu", "Confirmé", "Réalisé"}},
				},
			},
		},
		DashboardKPIs: []string{"reservations_jour", "taux_occupation", "ca_jour", "avis_clients"},
	},

	{
		ID:          "immobilier",
		Label:       "Immobilier",
		Icon:        "Home",
		Color:       "#0ea5e9",
		Description: "Agences, promoteurs, syndics",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Clients", Icon: "Building2", MenuOrder: 10,
				Types: []string{"Acheteur", "Vendeur", "Locataire", "Investisseur", "Bailleur"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Acheteur", "Vendeur", "Locataire", "Investisseur", "Bailleur"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"Prospect", "Mandant", "Notaire", "Artisan"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Prospect", "Mandant", "Notaire", "Artisan"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "lead", Label: "Prospects", Icon: "UserPlus", MenuOrder: 25,
				Types: []string{"Acheteur", "Vendeur", "Locataire"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Acheteur", "Vendeur", "Locataire"}},
					{Name: "source", Label: "Source", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Nouveau", "Qualifié", "Perdu"}},
				},
			},
			{
				Name: "contract", Label: "Mandats", Icon: "FileCheck", MenuOrder: 50,
				Types: []string{"Vente", "Location", "Gestion"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Vente", "Location", "Gestion"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "end_date", Label: "Fin", Type: FieldDate},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 60,
				Types: []string{"Honoraires", "Gestion"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Honoraires", "Gestion"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "bien", Label: "Bien", LabelPlural: "Biens", Icon: "Home", MenuOrder: 30,
				Types: []string{"Appartement", "Maison", "Terrain", "Local"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Appartement", "Maison", "Terrain", "Local"}},
					{Name: "surface", Label: "Surface", Type: FieldNumber},
					{Name: "price", Label: "Prix", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Disponible", "Sous offre", "Vendu"}},
				},
			},
			{
				Name: "visite", Label: "Visite", LabelPlural: "Visites", Icon: "Eye", MenuOrder: 35,
				Types: []string{"Simple", "Contre-visite"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Simple", "Contre-visite"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifiée", "Effectuée", "Annulée"}},
				},
			},
			{
				Name: "compromis", Label: "Compromis", LabelPlural: "Compromis", Icon: "Handshake", MenuOrder: 40,
				Types: []string{"Vente", "Location"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Vente", "Location"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Signé", "En attente", "Annulé"}},
				},
			},
			{
				Name: "copropriete", Label: "Copropriété", LabelPlural: "Copropriétés", Icon: "Building", MenuOrder: 45,
				Types: []string{"Syndic", "ASL"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Syndic", "ASL"}},
					{Name: "address", Label: "Adresse", Type: FieldText},
					{Name: "lots", Label: "Lots", Type: FieldNumber},
				},
			},
		},
		DashboardKPIs: []string{"biens_disponibles", "visites_semaine", "ventes_mois", "mandats_actifs"},
	},

	{
		ID:          "industrie",
		Label:       "Industrie",
		Icon:        "Factory",
		Color:       "#78716c",
		Description: "Production, fabrication, maintenance",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Clients", Icon: "Building2", MenuOrder: 10,
				Types: []string{"OEM", "Distributeur", "Intégrateur", "Maintenance"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"OEM", "Distributeur", "Intégrateur", "Maintenance"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"Achats", "Méthodes", "Maintenance", "Qualité"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Achats", "Méthodes", "Maintenance", "Qualité"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
				},
			},
			{
				Name: "product", Label: "Produits", Icon: "Package", MenuOrder: 30,
				Types: []string{"Série", "Sur-mesure", "Pièce"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Série", "Sur-mesure", "Pièce"}},
					{Name: "sku", Label: "SKU", Type: FieldText},
					{Name: "price", Label: "Prix", Type: FieldNumber},
				},
			},
			{
				Name: "quote", Label: "Devis", Icon: "FileText", MenuOrder: 40,
				Types: []string{"Série", "Sur-mesure", "Prototype"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Série", "Sur-mesure", "Prototype"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "valid_until", Label: "Valide jusqu'au", Type: FieldDate},
				},
			},
			{
				Name: "order", Label: "Commandes", Icon: "ClipboardList", MenuOrder: 50,
				Types: []string{"Série", "Prototype"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Série", "Prototype"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "due_date", Label: "Échéance", Type: FieldDate},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 60,
				Types: []string{"Produit", "Service"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Produit", "Service"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "of", Label: "Ordre de fabrication", LabelPlural: "Ordres de fabrication", Icon: "Factory", MenuOrder: 55,
				Types: []string{"Série", "Prototype", "Rework"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Série", "Prototype", "Rework"}},
					{Name: "quantity", Label: "Quantité", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifié", "En cours", "Terminé"}},
				},
			},
			{
				Name: "machine", Label: "Machine", LabelPlural: "Machines", Icon: "Cog", MenuOrder: 70,
				Types: []string{"Production", "Maintenance"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Production", "Maintenance"}},
					{Name: "serial", Label: "Numéro de série", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Disponible", "En service", "Maintenance"}},
				},
			},
			{
				Name: "maintenance", Label: "Maintenance", LabelPlural: "Maintenances", Icon: "Wrench", MenuOrder: 75,
				Types: []string{"Préventive", "Curative"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Préventive", "Curative"}},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifiée", "En cours", "Terminée"}},
				},
			},
			{
				Name: "lot", Label: "Lot", LabelPlural: "Lots", Icon: "Boxes", MenuOrder: 80,
				Types: []string{"Matière", "Produit fini"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Matière", "Produit fini"}},
					{Name: "quantity", Label: "Quantité", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"En stock", "Consommé"}},
				},
			},
		},
		DashboardKPIs: []string{"of_en_cours", "production_jour", "maintenances_planifiees", "taux_rendement"},
	},

	{
		ID:          "enseignement_formation",
		Label:       "Enseignement & Formation",
		Icon:        "GraduationCap",
		Color:       "#14b8a6",
		Description: "Écoles, centres de formation, coaching",
		CoreObjects: []Object{
			{
				Name: "account", Label: "Organismes", Icon: "Building2", MenuOrder: 10,
				Types: []string{"École", "Centre de formation", "Université", "Financeur", "Entreprise cliente", "Partenaire"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"École", "Centre de formation", "Université", "Financeur", "Entreprise cliente", "Partenaire"}},
					{Name: "uai", Label: "UAI", Type: FieldText},
					{Name: "siret", Label: "SIRET", Type: FieldText},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
					{Name: "address", Label: "Adresse", Type: FieldText},
					{Name: "is_active", Label: "Actif", Type: FieldCheckbox, Default: true},
				},
			},
			{
				Name: "contact", Label: "Contacts", Icon: "Users", MenuOrder: 20,
				Types: []string{"Apprenant", "Parent/Tuteur", "Formateur", "Administratif", "Financeur"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Apprenant", "Parent/Tuteur", "Formateur", "Administratif", "Financeur"}},
					{Name: "email", Label: "Email", Type: FieldText, Required: true},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
					{Name: "fonction", Label: "Fonction", Type: FieldText},
				},
			},
			{
				Name: "product", Label: "Formations", Icon: "BookOpen", MenuOrder: 30,
				Types: []string{"Cursus", "Module", "Atelier", "Coaching", "Certification"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Cursus", "Module", "Atelier", "Coaching", "Certification"}},
					{Name: "code", Label: "Code", Type: FieldText},
					{Name: "duration_hours", Label: "Durée (heures)", Type: FieldNumber},
					{Name: "modality", Label: "Modalité", Type: FieldSelect, Options: []string{"Présentiel", "Distanciel", "Hybride"}},
					{Name: "price", Label: "Prix", Type: FieldNumber},
				},
			},
			{
				Name: "quote", Label: "Devis", Icon: "FileText", MenuOrder: 50,
				Types: []string{"Entreprise", "Individuel", "Subvention", "Alternance"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Entreprise", "Individuel", "Subvention", "Alternance"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "valid_until", Label: "Valide jusqu'au", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyé", "Accepté", "Refusé"}},
				},
			},
			{
				Name: "invoice", Label: "Factures", Icon: "Receipt", MenuOrder: 60,
				Types: []string{"Apprenant", "Entreprise", "Financeur"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Apprenant", "Entreprise", "Financeur"}},
					{Name: "amount", Label: "Montant", Type: FieldNumber},
					{Name: "due_date", Label: "Échéance", Type: FieldDate},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Brouillon", "Envoyée", "Payée", "En retard"}},
				},
			},
		},
		CustomObjects: []Object{
			{
				Name: "apprenant", Label: "Apprenant", LabelPlural: "Apprenants", Icon: "UserGraduate", MenuOrder: 25,
				Types: []string{"Initial", "Alternance", "Continue"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Initial", "Alternance", "Continue"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Pré-inscrit", "Actif", "Terminé"}},
					{Name: "birthdate", Label: "Date de naissance", Type: FieldDate},
				},
			},
			{
				Name: "session", Label: "Session", LabelPlural: "Sessions", Icon: "Calendar", MenuOrder: 35,
				Types: []string{"Présentiel", "Distanciel", "Hybride"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Présentiel", "Distanciel", "Hybride"}},
					{Name: "start_date", Label: "Début", Type: FieldDate},
					{Name: "end_date", Label: "Fin", Type: FieldDate},
					{Name: "location", Label: "Lieu", Type: FieldText},
					{Name: "capacity", Label: "Capacité", Type: FieldNumber},
					{Name: "status", Label: "Statut", Type: FieldSelect, Options: []string{"Planifiée", "En cours", "Terminée"}},
				},
			},
			{
				Name: "formateur", Label: "Formateur", LabelPlural: "Formateurs", Icon: "UserCheck", MenuOrder: 40,
				Types: []string{"Interne", "Externe"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Interne", "Externe"}},
					{Name: "email", Label: "Email", Type: FieldText},
					{Name: "phone", Label: "Téléphone", Type: FieldText},
					{Name: "expertise", Label: "Expertise", Type: FieldText},
				},
			},
			{
				Name: "evaluation", Label: "Évaluation", LabelPlural: "Évaluations", Icon: "ClipboardCheck", MenuOrder: 45,
				Types: []string{"Note", "Compétence", "Satisfaction"},
				Fields: []Field{
					{Name: "type", Label: "Type", Type: FieldSelect, Required: true, Options: []string{"Note", "Compétence", "Satisfaction"}},
					{Name: "score", Label: "Score", Type: FieldNumber},
					{Name: "date", Label: "Date", Type: FieldDate},
					{Name: "comment", Label: "Commentaire", Type: FieldText},
				},
			},
		},
		DashboardKPIs: []string{"apprenants_actifs", "sessions_mois", "taux_satisfaction", "ca_formation"},
	},
}
