package service

import (
	"valuation-catalog-be/internal/dto"
	"valuation-catalog-be/internal/entity"
)

func bound(v float64) *float64 {
	return &v
}

// ReferenceCatalog is the fixed NBR 14653 reference set of valuation
// variables used to bootstrap or reset the catalog. Seeding it is keyed by
// code and idempotent.
func ReferenceCatalog() []dto.VariableDefinition {
	return []dto.VariableDefinition{
		// Características físicas
		{
			Code:         "area_total",
			Name:         "Área Total",
			Description:  "Área total construída do imóvel em metros quadrados",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeDecimal),
			Unit:         "m²",
			MinValue:     bound(0),
			MaxValue:     bound(10000),
			IsRequired:   true,
			DisplayOrder: 10,
		},
		{
			Code:         "area_privativa",
			Name:         "Área Privativa",
			Description:  "Área privativa do imóvel (sem áreas comuns)",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeDecimal),
			Unit:         "m²",
			MinValue:     bound(0),
			MaxValue:     bound(10000),
			DisplayOrder: 11,
		},
		{
			Code:         "area_terreno",
			Name:         "Área do Terreno",
			Description:  "Área total do terreno (para casas)",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeDecimal),
			Unit:         "m²",
			MinValue:     bound(0),
			MaxValue:     bound(100000),
			DisplayOrder: 12,
		},
		{
			Code:        "topografia",
			Name:        "Topografia",
			Description: "Característica topográfica do terreno",
			Category:    entity.CategoryPhysical,
			DataType:    string(entity.DataTypeChoice),
			Choices: map[string]string{
				"plano":     "Plano",
				"aclive":    "Aclive",
				"declive":   "Declive",
				"irregular": "Irregular",
			},
			DisplayOrder: 14,
		},
		{
			Code:         "quartos",
			Name:         "Número de Quartos",
			Description:  "Quantidade de quartos/dormitórios",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeInteger),
			Unit:         "unidades",
			MinValue:     bound(0),
			MaxValue:     bound(20),
			DisplayOrder: 20,
		},
		{
			Code:         "suites",
			Name:         "Número de Suítes",
			Description:  "Quantidade de suítes (quartos com banheiro)",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeInteger),
			Unit:         "unidades",
			MinValue:     bound(0),
			MaxValue:     bound(10),
			DisplayOrder: 21,
		},
		{
			Code:         "banheiros",
			Name:         "Número de Banheiros",
			Description:  "Quantidade total de banheiros",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeInteger),
			Unit:         "unidades",
			MinValue:     bound(0),
			MaxValue:     bound(10),
			DisplayOrder: 22,
		},
		{
			Code:         "vagas_garagem",
			Name:         "Vagas de Garagem",
			Description:  "Número de vagas de garagem",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeInteger),
			Unit:         "vagas",
			MinValue:     bound(0),
			MaxValue:     bound(10),
			DisplayOrder: 30,
		},
		{
			Code:         "andar",
			Name:         "Andar",
			Description:  "Andar do imóvel (para apartamentos)",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeInteger),
			Unit:         "andar",
			MinValue:     bound(0),
			MaxValue:     bound(100),
			DisplayOrder: 31,
		},
		{
			Code:         "elevador",
			Name:         "Possui Elevador",
			Description:  "Indica se o prédio possui elevador",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeBoolean),
			DisplayOrder: 70,
		},
		{
			Code:         "piscina",
			Name:         "Possui Piscina",
			Description:  "Indica se possui piscina (privativa ou condomínio)",
			Category:     entity.CategoryPhysical,
			DataType:     string(entity.DataTypeBoolean),
			DisplayOrder: 71,
		},

		// Qualidade e acabamento
		{
			Code:        "padrao_construcao",
			Name:        "Padrão de Construção",
			Description: "Padrão construtivo e acabamento do imóvel",
			Category:    entity.CategoryQuality,
			DataType:    string(entity.DataTypeOrdinal),
			Choices: map[string]string{
				"baixo":  "Baixo",
				"normal": "Normal",
				"alto":   "Alto",
				"luxo":   "Luxo",
			},
			ChoiceOrder:  []string{"baixo", "normal", "alto", "luxo"},
			DisplayOrder: 50,
		},
		{
			Code:        "estado_conservacao",
			Name:        "Estado de Conservação",
			Description: "Estado atual de conservação do imóvel",
			Category:    entity.CategoryQuality,
			DataType:    string(entity.DataTypeOrdinal),
			Choices: map[string]string{
				"ruim":    "Ruim",
				"regular": "Regular",
				"bom":     "Bom",
				"otimo":   "Ótimo",
				"novo":    "Novo",
			},
			ChoiceOrder:  []string{"ruim", "regular", "bom", "otimo", "novo"},
			DisplayOrder: 51,
		},
		{
			Code:         "portaria_24h",
			Name:         "Portaria 24h",
			Description:  "Indica se possui portaria 24 horas",
			Category:     entity.CategoryQuality,
			DataType:     string(entity.DataTypeBoolean),
			DisplayOrder: 72,
		},

		// Localização
		{
			Code:         "distancia_centro",
			Name:         "Distância ao Centro",
			Description:  "Distância aproximada ao centro da cidade",
			Category:     entity.CategoryLocation,
			DataType:     string(entity.DataTypeDecimal),
			Unit:         "km",
			MinValue:     bound(0),
			MaxValue:     bound(100),
			DisplayOrder: 60,
		},
		{
			Code:        "vista",
			Name:        "Vista",
			Description: "Tipo de vista do imóvel",
			Category:    entity.CategoryLocation,
			DataType:    string(entity.DataTypeChoice),
			Choices: map[string]string{
				"sem_vista":     "Sem vista",
				"vista_parcial": "Vista parcial",
				"vista_livre":   "Vista livre",
				"vista_mar":     "Vista mar/lago",
			},
			DisplayOrder: 61,
		},
		{
			Code:        "frente",
			Name:        "Frente",
			Description: "Posicionamento do imóvel (frente/fundos)",
			Category:    entity.CategoryLocation,
			DataType:    string(entity.DataTypeChoice),
			Choices: map[string]string{
				"frente":  "Frente",
				"fundos":  "Fundos",
				"lateral": "Lateral",
			},
			DisplayOrder: 62,
		},
		{
			Code:        "posicao_solar",
			Name:        "Posição Solar",
			Description: "Orientação solar do imóvel",
			Category:    entity.CategoryLocation,
			DataType:    string(entity.DataTypeNominal),
			Choices: map[string]string{
				"norte":    "Norte",
				"sul":      "Sul",
				"leste":    "Leste",
				"oeste":    "Oeste",
				"nordeste": "Nordeste",
				"noroeste": "Noroeste",
				"sudeste":  "Sudeste",
				"sudoeste": "Sudoeste",
			},
			DisplayOrder: 63,
		},

		// Aspectos temporais
		{
			Code:         "idade_imovel",
			Name:         "Idade do Imóvel",
			Description:  "Idade aproximada do imóvel em anos",
			Category:     entity.CategoryTemporal,
			DataType:     string(entity.DataTypeInteger),
			Unit:         "anos",
			MinValue:     bound(0),
			MaxValue:     bound(200),
			DisplayOrder: 40,
		},

		// Variáveis proxy
		{
			Code:         "valor_condominio",
			Name:         "Valor do Condomínio",
			Description:  "Valor mensal do condomínio (proxy para qualidade)",
			Category:     entity.CategoryProxy,
			DataType:     string(entity.DataTypeDecimal),
			Unit:         "R$",
			MinValue:     bound(0),
			MaxValue:     bound(50000),
			DisplayOrder: 80,
		},
		{
			Code:         "iptu_anual",
			Name:         "IPTU Anual",
			Description:  "Valor do IPTU anual (proxy para valor venal)",
			Category:     entity.CategoryProxy,
			DataType:     string(entity.DataTypeDecimal),
			Unit:         "R$",
			MinValue:     bound(0),
			MaxValue:     bound(100000),
			DisplayOrder: 81,
		},

		// Variáveis dicotômicas derivadas
		{
			Code:               "dic_padrao_alto",
			Name:               "Dummy: Padrão Alto",
			Description:        "Variável dicotômica: 1 se padrão=Alto, 0 caso contrário",
			Category:           entity.CategoryDichotomous,
			DataType:           string(entity.DataTypeDichotomous),
			DisplayOrder:       90,
			ParentCode:         "padrao_construcao",
			TransformationRule: `1 se padrao_construcao="alto", 0 caso contrário`,
		},
		{
			Code:               "dic_padrao_luxo",
			Name:               "Dummy: Padrão Luxo",
			Description:        "Variável dicotômica: 1 se padrão=Luxo, 0 caso contrário",
			Category:           entity.CategoryDichotomous,
			DataType:           string(entity.DataTypeDichotomous),
			DisplayOrder:       91,
			ParentCode:         "padrao_construcao",
			TransformationRule: `1 se padrao_construcao="luxo", 0 caso contrário`,
		},
		{
			Code:               "dic_vista_mar",
			Name:               "Dummy: Vista Mar",
			Description:        "Variável dicotômica: 1 se vista=mar/lago, 0 caso contrário",
			Category:           entity.CategoryDichotomous,
			DataType:           string(entity.DataTypeDichotomous),
			DisplayOrder:       92,
			ParentCode:         "vista",
			TransformationRule: `1 se vista="vista_mar", 0 caso contrário`,
		},
	}
}
